// Package transform implements the two tree-rewriting passes that run
// after lowering and before the final measurement and placement:
// wrapping long sequences into stacks of lines (spec.md §4.2) and fusing
// adjacent bypass rails (spec.md §4.3). Both passes consume and produce
// [diagram.Node] trees; neither keeps a [layout.Record], though both
// measure subtrees on the fly (wrapping to decide where lines break,
// optimization to veto a fusion).
package transform

import (
	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/layout"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Wrap recursively rewrites every [diagram.Sequence] carrying a
// resolved Soft, Hard, or Default break into a [diagram.Stack] of
// single-line sequences, per spec.md §4.2. node must already be
// lowered ([diagram.Lower]); Wrap does not lower.
func Wrap(node diagram.Node, profile metric.Profile) (diagram.Node, error) {
	return wrap(node, profile, false)
}

// insideNoBreak is true while wrapping a node that sits directly inside
// a Choice alternative or a OneOrMore's body/repeat, where spec.md §4.2
// says a Default break resolves like NoBreak rather than like Soft.
func wrap(node diagram.Node, profile metric.Profile, insideNoBreak bool) (diagram.Node, error) {
	switch v := node.(type) {
	case nil, diagram.Skip, *diagram.Terminal, *diagram.NonTerminal, *diagram.Comment:
		return node, nil
	case *diagram.Sequence:
		return wrapSequence(v, profile, insideNoBreak)
	case *diagram.Stack:
		rows, err := wrapEach(v.Rows, profile, false)
		if err != nil {
			return nil, err
		}
		return &diagram.Stack{Rows: rows}, nil
	case *diagram.Choice:
		children, err := wrapEach(v.Children, profile, true)
		if err != nil {
			return nil, err
		}
		return &diagram.Choice{Children: children, Default: v.Default}, nil
	case *diagram.OneOrMore:
		body, err := wrap(v.Body, profile, true)
		if err != nil {
			return nil, err
		}
		repeat, err := wrap(v.Repeat, profile, true)
		if err != nil {
			return nil, err
		}
		return &diagram.OneOrMore{Body: body, Repeat: repeat, RepeatTop: v.RepeatTop}, nil
	case *diagram.Barrier:
		child, err := wrap(v.Child, profile, insideNoBreak)
		if err != nil {
			return nil, err
		}
		return &diagram.Barrier{Child: child}, nil
	case *diagram.Group:
		child, err := wrap(v.Child, profile, insideNoBreak)
		if err != nil {
			return nil, err
		}
		return &diagram.Group{Child: child, Text: v.Text, Href: v.Href, Title: v.Title, CSSClass: v.CSSClass}, nil
	case *diagram.FusedBypass:
		mains, err := wrapEach(v.Mains, profile, false)
		if err != nil {
			return nil, err
		}
		return &diagram.FusedBypass{Mains: mains, Side: v.Side}, nil
	case *diagram.Optional, *diagram.ZeroOrMore:
		dgerrors.Invariant("wrap: encountered un-lowered Optional/ZeroOrMore")
		return nil, nil
	default:
		dgerrors.Invariant("wrap: unhandled node type")
		return nil, nil
	}
}

func wrapEach(nodes []diagram.Node, profile metric.Profile, insideNoBreak bool) ([]diagram.Node, error) {
	out := make([]diagram.Node, len(nodes))
	for i, n := range nodes {
		w, err := wrap(n, profile, insideNoBreak)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func wrapSequence(seq *diagram.Sequence, profile metric.Profile, insideNoBreak bool) (diagram.Node, error) {
	children, err := wrapEach(seq.Children, profile, false)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return &diagram.Sequence{}, nil
	}

	resolved := seq.ResolvedBreaks()
	for i, b := range resolved {
		if b == diagram.Default {
			if insideNoBreak {
				resolved[i] = diagram.NoBreak
			} else {
				resolved[i] = diagram.Soft
			}
		}
	}

	candidate := false
	for _, b := range resolved {
		if b != diagram.NoBreak {
			candidate = true
			break
		}
	}
	if !candidate {
		seq, err := diagram.NewSequence(children)
		return seq, err
	}

	widths := make([]float64, len(children))
	for i, c := range children {
		rec, err := layout.Measure(c, profile)
		if err != nil {
			return nil, err
		}
		widths[i] = rec.Width
	}

	sep := profile.Spacing().HorizontalSeqSeparation
	maxWidth := profile.MaxWidth()

	var lines [][]diagram.Node
	var current []diagram.Node
	currentWidth := 0.0
	for i, c := range children {
		if i > 0 {
			join := resolved[i-1]
			projected := currentWidth + sep + widths[i]
			if join == diagram.Hard || (join == diagram.Soft && projected > maxWidth) {
				lines = append(lines, current)
				current = nil
				currentWidth = 0
			} else {
				currentWidth += sep
			}
		}
		current = append(current, c)
		currentWidth += widths[i]
	}
	lines = append(lines, current)

	rows := make([]diagram.Node, len(lines))
	for i, line := range lines {
		lineSeq, err := diagram.NewSequence(line)
		if err != nil {
			return nil, err
		}
		rows[i] = lineSeq
	}
	return diagram.NewStack(rows...), nil
}
