package layout

import (
	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Measure computes the intrinsic Width/Up/Down/EntryY/ExitY of node and
// every descendant in a single post-order traversal, per spec.md §4.1.
// node must already be lowered ([diagram.Lower]) and, if it contains any
// wrap candidates, already wrapped
// ([github.com/flowshape/syntaxdiagrams/pkg/transform.Wrap]) — Measure
// treats a [diagram.Sequence] that still carries a soft/hard/default
// break as a single unbroken row rather than performing any wrapping
// itself.
//
// The only error this can return is an [dgerrors.EmbedderError]
// wrapping a failure from profile's injected text measure.
func Measure(node diagram.Node, profile metric.Profile) (*Record, error) {
	return measure(node, profile, false)
}

// outer selects the "_outer" vs. inner separation constant for
// Stack/Choice gaps. Measure starts it at false and no call passes true,
// so the inner constants are the ones in effect at every depth,
// including a top-level Stack or Choice; Place likewise uses only the
// inner constants.
func measure(node diagram.Node, profile metric.Profile, outer bool) (*Record, error) {
	switch v := node.(type) {
	case nil:
		return &Record{Node: node}, nil
	case diagram.Skip:
		return &Record{Node: node}, nil
	case *diagram.Terminal:
		return measureLeaf(v, diagram.KindTerminal, v.Text, profile)
	case *diagram.NonTerminal:
		return measureLeaf(v, diagram.KindNonTerminal, v.Text, profile)
	case *diagram.Comment:
		return measureLeaf(v, diagram.KindComment, v.Text, profile)
	case *diagram.Sequence:
		return measureSequence(v, profile, outer)
	case *diagram.Stack:
		return measureStack(v, profile, outer)
	case *diagram.Choice:
		return measureChoice(v, profile, outer)
	case *diagram.OneOrMore:
		return measureOneOrMore(v, profile, outer)
	case *diagram.Barrier:
		child, err := measure(v.Child, profile, outer)
		if err != nil {
			return nil, err
		}
		return &Record{
			Node: v, Width: child.Width, Up: child.Up, Down: child.Down,
			EntryY: child.EntryY, ExitY: child.ExitY, Children: []*Record{child},
		}, nil
	case *diagram.Group:
		return measureGroup(v, profile)
	case *diagram.FusedBypass:
		return measureFusedBypass(v, profile, outer)
	case *diagram.Optional, *diagram.ZeroOrMore:
		dgerrors.Invariant("measure: encountered un-lowered Optional/ZeroOrMore")
		return nil, nil
	default:
		dgerrors.Invariant("measure: unhandled node type")
		return nil, nil
	}
}

func measureLeaf(node diagram.Node, kind diagram.Kind, text string, profile metric.Profile) (*Record, error) {
	w, h, err := profile.MeasureText(kind, text)
	if err != nil {
		return nil, dgerrors.WrapEmbedder(err, "text measure failed for %s %q", kind, text)
	}
	style := profile.LeafStyle(kind)
	endAllowance := 0.0
	if style.Radius >= h/2 {
		endAllowance = h
	}
	return &Record{
		Node:  node,
		Width: 2*style.HorizontalPadding + w + endAllowance,
		Up:    h/2 + style.VerticalPadding,
		Down:  h/2 + style.VerticalPadding,
	}, nil
}

func measureSequence(seq *diagram.Sequence, profile metric.Profile, outer bool) (*Record, error) {
	if len(seq.Children) == 0 {
		return &Record{Node: seq}, nil
	}
	spacing := profile.Spacing()
	children := make([]*Record, len(seq.Children))
	for i, c := range seq.Children {
		r, err := measure(c, profile, outer)
		if err != nil {
			return nil, err
		}
		children[i] = r
	}
	width := 0.0
	up, down := 0.0, 0.0
	for i, c := range children {
		width += c.Width
		if i > 0 {
			width += spacing.HorizontalSeqSeparation
		}
		if c.Up > up {
			up = c.Up
		}
		if c.Down > down {
			down = c.Down
		}
	}
	return &Record{
		Node: seq, Width: width, Up: up, Down: down,
		EntryY: children[0].EntryY, ExitY: children[len(children)-1].ExitY,
		Children: children,
	}, nil
}

func measureStack(stack *diagram.Stack, profile metric.Profile, outer bool) (*Record, error) {
	if len(stack.Rows) == 0 {
		return &Record{Node: stack}, nil
	}
	spacing := profile.Spacing()
	sep := spacing.VerticalSeqSeparation
	if outer {
		sep = spacing.VerticalSeqSeparationOuter
	}
	rows := make([]*Record, len(stack.Rows))
	for i, row := range stack.Rows {
		r, err := measure(row, profile, false)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}
	width := 0.0
	for _, r := range rows {
		if r.Width > width {
			width = r.Width
		}
	}
	width += 2 * spacing.ArcRadius

	cursorY := 0.0
	for i := 1; i < len(rows); i++ {
		gap := sep + 2*spacing.ArcRadius
		cursorY += rows[i-1].Down + gap + rows[i].Up
	}
	last := rows[len(rows)-1]
	return &Record{
		Node: stack, Width: width, Up: rows[0].Up, Down: cursorY + last.Down,
		EntryY: rows[0].EntryY, ExitY: cursorY + last.ExitY,
		Children: rows,
	}, nil
}

func measureChoice(choice *diagram.Choice, profile metric.Profile, outer bool) (*Record, error) {
	spacing := profile.Spacing()
	sep := spacing.VerticalChoiceSeparation
	if outer {
		sep = spacing.VerticalChoiceSeparationOuter
	}
	alts := make([]*Record, len(choice.Children))
	for i, c := range choice.Children {
		r, err := measure(c, profile, false)
		if err != nil {
			return nil, err
		}
		alts[i] = r
	}
	width := 0.0
	for _, r := range alts {
		if r.Width > width {
			width = r.Width
		}
	}
	width += 2 * (spacing.ArcRadius + spacing.ArcMargin)

	def := alts[choice.Default]
	up, down := def.Up, def.Down
	for i := choice.Default - 1; i >= 0; i-- {
		up += alts[i].Height() + sep
	}
	for i := choice.Default + 1; i < len(alts); i++ {
		down += alts[i].Height() + sep
	}
	return &Record{
		Node: choice, Width: width, Up: up, Down: down,
		EntryY: def.EntryY, ExitY: def.ExitY, Children: alts,
	}, nil
}

func measureOneOrMore(loop *diagram.OneOrMore, profile metric.Profile, outer bool) (*Record, error) {
	spacing := profile.Spacing()
	body, err := measure(loop.Body, profile, false)
	if err != nil {
		return nil, err
	}
	repeat, err := measure(loop.Repeat, profile, false)
	if err != nil {
		return nil, err
	}
	width := body.Width
	if repeat.Width > width {
		width = repeat.Width
	}
	width += 2 * spacing.ArcRadius

	sep := spacing.VerticalSeqSeparation
	if outer {
		sep = spacing.VerticalSeqSeparationOuter
	}
	extra := repeat.Height() + sep
	up, down := body.Up, body.Down
	if loop.RepeatTop {
		up += extra
	} else {
		down += extra
	}
	return &Record{
		Node: loop, Width: width, Up: up, Down: down,
		EntryY: body.EntryY, ExitY: body.ExitY, Children: []*Record{body, repeat},
	}, nil
}

func measureGroup(group *diagram.Group, profile metric.Profile) (*Record, error) {
	child, err := measure(group.Child, profile, false)
	if err != nil {
		return nil, err
	}
	style := profile.GroupStyle()
	_, captionHeight, err := profile.MeasureText(diagram.KindComment, group.Text)
	if err != nil {
		return nil, dgerrors.WrapEmbedder(err, "text measure failed for group caption %q", group.Text)
	}
	return &Record{
		Node:  group,
		Width: child.Width + 2*(style.HorizontalPadding+style.HorizontalMargin),
		Up:    child.Up + style.VerticalPadding + style.VerticalMargin + captionHeight,
		Down:  child.Down + style.VerticalPadding + style.VerticalMargin,
		EntryY: child.EntryY, ExitY: child.ExitY, Children: []*Record{child},
	}, nil
}

// measureFusedBypass measures an internal node the optimization pass
// produces: the same shape as a [diagram.Choice] whose alternatives are
// Mains plus an implicit single Skip rail on Side, but drawn as one
// shared rail rather than one per main — so only one arc-pair worth of
// width/height is reserved regardless of len(Mains).
func measureFusedBypass(fused *diagram.FusedBypass, profile metric.Profile, outer bool) (*Record, error) {
	spacing := profile.Spacing()
	sep := spacing.VerticalChoiceSeparation
	if outer {
		sep = spacing.VerticalChoiceSeparationOuter
	}
	mains := make([]*Record, len(fused.Mains))
	width := 0.0
	for i, m := range fused.Mains {
		r, err := measure(m, profile, false)
		if err != nil {
			return nil, err
		}
		mains[i] = r
		w := r.Width
		if i > 0 {
			w += spacing.HorizontalSeqSeparation
		}
		width += w
	}
	width += 2 * (spacing.ArcRadius + spacing.ArcMargin)

	up, down := 0.0, 0.0
	for _, m := range mains {
		if m.Up > up {
			up = m.Up
		}
		if m.Down > down {
			down = m.Down
		}
	}
	railExtent := spacing.ArcRadius + sep
	switch fused.Side {
	case diagram.Top:
		up += railExtent
	default:
		down += railExtent
	}
	var entryY, exitY float64
	if len(mains) > 0 {
		entryY, exitY = mains[0].EntryY, mains[len(mains)-1].ExitY
	}
	return &Record{
		Node: fused, Width: width, Up: up, Down: down,
		EntryY: entryY, ExitY: exitY, Children: mains,
	}, nil
}
