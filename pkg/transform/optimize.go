package transform

import (
	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/layout"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Optimize recursively rewrites adjacent lowered-Optional shapes inside
// a [diagram.Sequence] into a single [diagram.FusedBypass], per the
// "canonical trigger" spec.md §4.3 names explicitly: a run of two or
// more consecutive Choice(Skip, x) / Choice(x, Skip) siblings whose
// bypass rail sits on the same side becomes one flat FusedBypass with
// one main per sibling. Any richer pattern (merges across a Stack row
// boundary, fusing through a Group, fusing the rarer
// element-is-the-bypass Optional shape) is left unmerged.
//
// node must already be lowered and wrapped; Optimize does not lower or
// wrap. profile supplies the measurements used to veto a fusion whose
// shared rail would cross into a tall alternative (spec.md §4.3: "do
// not merge if either optional contains ... a sub-element whose
// vertical extent would make the fused rail cross it").
func Optimize(node diagram.Node, profile metric.Profile) (diagram.Node, error) {
	return optimize(node, profile)
}

func optimize(node diagram.Node, profile metric.Profile) (diagram.Node, error) {
	switch v := node.(type) {
	case nil, diagram.Skip, *diagram.Terminal, *diagram.NonTerminal, *diagram.Comment:
		return node, nil
	case *diagram.Sequence:
		return optimizeSequence(v, profile)
	case *diagram.Stack:
		rows, err := optimizeEach(v.Rows, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.Stack{Rows: rows}, nil
	case *diagram.Choice:
		children, err := optimizeEach(v.Children, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.Choice{Children: children, Default: v.Default}, nil
	case *diagram.OneOrMore:
		body, err := optimize(v.Body, profile)
		if err != nil {
			return nil, err
		}
		repeat, err := optimize(v.Repeat, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.OneOrMore{Body: body, Repeat: repeat, RepeatTop: v.RepeatTop}, nil
	case *diagram.Barrier:
		// The Barrier node itself, opaque to the outer Sequence's scan
		// because it is never a bare Choice shape, already keeps a fusion
		// from reaching across it; recurse so fusions can still happen
		// among its own descendants.
		child, err := optimize(v.Child, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.Barrier{Child: child}, nil
	case *diagram.Group:
		child, err := optimize(v.Child, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.Group{Child: child, Text: v.Text, Href: v.Href, Title: v.Title, CSSClass: v.CSSClass}, nil
	case *diagram.FusedBypass:
		mains, err := optimizeEach(v.Mains, profile)
		if err != nil {
			return nil, err
		}
		return &diagram.FusedBypass{Mains: mains, Side: v.Side}, nil
	case *diagram.Optional, *diagram.ZeroOrMore:
		dgerrors.Invariant("optimize: encountered un-lowered Optional/ZeroOrMore")
		return nil, nil
	default:
		dgerrors.Invariant("optimize: unhandled node type")
		return nil, nil
	}
}

func optimizeEach(nodes []diagram.Node, profile metric.Profile) ([]diagram.Node, error) {
	out := make([]diagram.Node, len(nodes))
	for i, n := range nodes {
		o, err := optimize(n, profile)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

func optimizeSequence(seq *diagram.Sequence, profile metric.Profile) (diagram.Node, error) {
	children, err := optimizeEach(seq.Children, profile)
	if err != nil {
		return nil, err
	}

	var merged []diagram.Node
	i := 0
	for i < len(children) {
		main, side, ok := detectBypass(children[i])
		if !ok || !fusable(main, side, profile) {
			merged = append(merged, children[i])
			i++
			continue
		}
		mains := []diagram.Node{main}
		j := i + 1
		for j < len(children) {
			nextMain, nextSide, nextOk := detectBypass(children[j])
			if !nextOk || nextSide != side || !fusable(nextMain, nextSide, profile) {
				break
			}
			mains = append(mains, nextMain)
			j++
		}
		if len(mains) >= 2 {
			merged = append(merged, diagram.NewFusedBypass(mains, side))
		} else {
			merged = append(merged, children[i])
		}
		i = j
	}

	out, err := diagram.NewSequence(merged)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// detectBypass reports whether n is a lowered Optional's canonical
// two-alternative Choice(Skip, x)/Choice(x, Skip) shape, returning the
// non-Skip alternative and which side of the main line the Skip
// alternative (the bypass rail) bulges on.
func detectBypass(n diagram.Node) (main diagram.Node, side diagram.Side, ok bool) {
	choice, isChoice := n.(*diagram.Choice)
	if !isChoice || len(choice.Children) != 2 {
		return nil, 0, false
	}
	_, skip0 := choice.Children[0].(diagram.Skip)
	_, skip1 := choice.Children[1].(diagram.Skip)
	switch {
	case skip0 && !skip1 && choice.Default == 1:
		return choice.Children[1], diagram.Top, true
	case !skip0 && skip1 && choice.Default == 0:
		return choice.Children[0], diagram.Bottom, true
	default:
		return nil, 0, false
	}
}

// fusable vetoes a candidate whose own vertical extent on the bypass
// side already reaches well past what a lone leaf box would — e.g. the
// candidate is itself a nested Choice bulging the same direction — on
// the grounds that a single shared rail spanning it and a neighbor
// could then visually cross through it.
func fusable(main diagram.Node, side diagram.Side, profile metric.Profile) bool {
	rec, err := layout.Measure(main, profile)
	if err != nil {
		return false
	}
	spacing := profile.Spacing()
	baseline := spacing.ArcRadius + spacing.VerticalChoiceSeparation
	if side == diagram.Top {
		return rec.Up <= baseline
	}
	return rec.Down <= baseline
}
