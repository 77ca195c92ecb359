package transform

import (
	"testing"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

func narrowTextSettings() metric.Settings {
	s := metric.DefaultSettings()
	s.MaxWidth = 6 // forces a wrap after a couple of short terminals
	return s
}

func TestWrapNoBreakLeavesSequenceAlone(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b")}
	seq, err := diagram.NewSequence(children)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Wrap(seq, profile)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if _, ok := out.(*diagram.Sequence); !ok {
		t.Errorf("a sequence with no wrap candidates should stay a Sequence, got %T", out)
	}
}

func TestWrapHardAlwaysBreaks(t *testing.T) {
	profile := metric.NewTextProfile(metric.DefaultSettings())
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b")}
	seq, err := diagram.NewSequence(children, diagram.Hard)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Wrap(seq, profile)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	stack, ok := out.(*diagram.Stack)
	if !ok {
		t.Fatalf("a Hard join should always produce a Stack, got %T", out)
	}
	if len(stack.Rows) != 2 {
		t.Errorf("Hard join should split into 2 rows, got %d", len(stack.Rows))
	}
}

func TestWrapSoftBreaksOnlyWhenOverWidth(t *testing.T) {
	wide := metric.NewTextProfile(metric.DefaultSettings())
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b")}
	seq, err := diagram.NewSequence(children, diagram.Soft)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	out, err := Wrap(seq, wide)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if stack, ok := out.(*diagram.Stack); !ok || len(stack.Rows) != 1 {
		t.Errorf("a Soft join under MaxWidth should not break: want a one-row Stack, got %T", out)
	}

	narrow := metric.NewTextProfile(narrowTextSettings())
	out, err = Wrap(seq, narrow)
	if err != nil {
		t.Fatalf("Wrap (narrow): %v", err)
	}
	if _, ok := out.(*diagram.Stack); !ok {
		t.Errorf("a Soft join over MaxWidth should produce a Stack, got %T", out)
	}
}

func TestWrapDefaultBehavesLikeNoBreakInsideChoice(t *testing.T) {
	profile := metric.NewTextProfile(narrowTextSettings())
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b")}
	inner, err := diagram.NewSequence(children, diagram.Default)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	choice, err := diagram.NewChoice([]diagram.Node{inner, diagram.NewTerminal("c")}, 0)
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}

	out, err := Wrap(choice, profile)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	wrappedChoice := out.(*diagram.Choice)
	if _, ok := wrappedChoice.Children[0].(*diagram.Sequence); !ok {
		t.Errorf("a Default join directly inside a Choice should resolve like NoBreak, got %T", wrappedChoice.Children[0])
	}
}

func TestWrapRecursesIntoOneOrMore(t *testing.T) {
	profile := metric.NewTextProfile(narrowTextSettings())
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b")}
	body, err := diagram.NewSequence(children, diagram.Default)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	loop := diagram.NewOneOrMore(body)

	out, err := Wrap(loop, profile)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	wrappedLoop := out.(*diagram.OneOrMore)
	if _, ok := wrappedLoop.Body.(*diagram.Sequence); !ok {
		t.Errorf("a Default join directly inside a loop's body should resolve like NoBreak, got %T", wrappedLoop.Body)
	}
}
