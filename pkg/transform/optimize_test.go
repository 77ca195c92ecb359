package transform

import (
	"testing"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// bypassChoice builds the canonical two-alternative Choice(Skip, x) shape
// an Optional lowers to, bulging on side top (Default==1) or bottom
// (Default==0), matching detectBypass's recognized shapes.
func bypassChoice(t *testing.T, main diagram.Node, top bool) diagram.Node {
	t.Helper()
	var children []diagram.Node
	var def int
	if top {
		children, def = []diagram.Node{diagram.Skip{}, main}, 1
	} else {
		children, def = []diagram.Node{main, diagram.Skip{}}, 0
	}
	choice, err := diagram.NewChoice(children, def)
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}
	return choice
}

func TestOptimizeFusesTwoAdjacentBypasses(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	a := bypassChoice(t, diagram.NewTerminal("a"), true)
	b := bypassChoice(t, diagram.NewTerminal("b"), true)
	seq, err := diagram.NewSequence([]diagram.Node{a, b})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Optimize(seq, profile)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	optSeq := out.(*diagram.Sequence)
	if len(optSeq.Children) != 1 {
		t.Fatalf("two fusable same-side bypasses should merge into one node, got %d children", len(optSeq.Children))
	}
	fused, ok := optSeq.Children[0].(*diagram.FusedBypass)
	if !ok {
		t.Fatalf("merged node should be a FusedBypass, got %T", optSeq.Children[0])
	}
	if len(fused.Mains) != 2 {
		t.Errorf("FusedBypass should carry both mains, got %d", len(fused.Mains))
	}
	if fused.Side != diagram.Top {
		t.Errorf("Side = %v, want Top", fused.Side)
	}
}

func TestOptimizeDoesNotFuseDifferentSides(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	a := bypassChoice(t, diagram.NewTerminal("a"), true)
	b := bypassChoice(t, diagram.NewTerminal("b"), false)
	seq, err := diagram.NewSequence([]diagram.Node{a, b})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Optimize(seq, profile)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	optSeq := out.(*diagram.Sequence)
	if len(optSeq.Children) != 2 {
		t.Errorf("bypasses on different sides should not merge, got %d children", len(optSeq.Children))
	}
}

func TestOptimizeLeavesSingleBypassAlone(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	a := bypassChoice(t, diagram.NewTerminal("a"), true)
	seq, err := diagram.NewSequence([]diagram.Node{a, diagram.NewTerminal("plain")})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Optimize(seq, profile)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	optSeq := out.(*diagram.Sequence)
	if len(optSeq.Children) != 2 {
		t.Fatalf("a lone bypass next to a plain node should not merge, got %d children", len(optSeq.Children))
	}
	if _, ok := optSeq.Children[0].(*diagram.Choice); !ok {
		t.Errorf("the unmerged bypass should remain a Choice, got %T", optSeq.Children[0])
	}
}

func TestOptimizeVetoesTallCandidate(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	// A nested Choice bulging the same direction is tall enough that
	// fusable should veto merging it with a neighboring bypass.
	tall, err := diagram.NewChoice([]diagram.Node{
		diagram.NewTerminal("x"), diagram.NewTerminal("y"), diagram.NewTerminal("z"),
	}, 2)
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}
	a := bypassChoice(t, tall, true)
	b := bypassChoice(t, diagram.NewTerminal("b"), true)
	seq, err := diagram.NewSequence([]diagram.Node{a, b})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Optimize(seq, profile)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	optSeq := out.(*diagram.Sequence)
	if len(optSeq.Children) != 2 {
		t.Errorf("a candidate whose rail would cross a tall alternative should not fuse, got %d children", len(optSeq.Children))
	}
}
