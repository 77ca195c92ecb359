package layout

import (
	"testing"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

func TestPlaceRootAtOrigin(t *testing.T) {
	profile := textProfile()
	node := diagram.NewTerminal("x")
	rec, err := Measure(node, profile)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	Place(node, rec, profile)

	if rec.X != 0 {
		t.Errorf("root X = %v, want 0", rec.X)
	}
	if rec.Y != rec.Up {
		t.Errorf("root Y = %v, want Up = %v", rec.Y, rec.Up)
	}
}

func TestPlaceSequenceAdvancesX(t *testing.T) {
	profile := textProfile()
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("bb")}
	seq, err := diagram.NewSequence(children)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	rec, err := Measure(seq, profile)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	Place(seq, rec, profile)

	first, second := rec.Children[0], rec.Children[1]
	if first.X != 0 {
		t.Errorf("first child X = %v, want 0", first.X)
	}
	wantSecondX := first.Width + profile.Spacing().HorizontalSeqSeparation
	if second.X != wantSecondX {
		t.Errorf("second child X = %v, want %v", second.X, wantSecondX)
	}
	if first.Y != second.Y {
		t.Errorf("a single-line sequence should place every child on the same Y: %v vs %v", first.Y, second.Y)
	}
}

func TestPlaceChoiceOffsetsAlternatives(t *testing.T) {
	profile := textProfile()
	children := []diagram.Node{diagram.NewTerminal("a"), diagram.NewTerminal("b"), diagram.NewTerminal("c")}
	choice, err := diagram.NewChoice(children, 1)
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}
	rec, err := Measure(choice, profile)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	Place(choice, rec, profile)

	above, def, below := rec.Children[0], rec.Children[1], rec.Children[2]
	if def.Y != rec.Y {
		t.Errorf("default alternative should sit on the main line Y=%v, got %v", rec.Y, def.Y)
	}
	if above.Y >= def.Y {
		t.Errorf("alternative above the default should have a smaller Y: above=%v default=%v", above.Y, def.Y)
	}
	if below.Y <= def.Y {
		t.Errorf("alternative below the default should have a larger Y: below=%v default=%v", below.Y, def.Y)
	}
}

func TestPlaceStackRowsDescend(t *testing.T) {
	profile := textProfile()
	stack := diagram.NewStack(diagram.NewTerminal("row1"), diagram.NewTerminal("row2"))
	rec, err := Measure(stack, profile)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	Place(stack, rec, profile)

	first, second := rec.Children[0], rec.Children[1]
	if second.Y <= first.Y {
		t.Errorf("second row should be placed below the first: first=%v second=%v", first.Y, second.Y)
	}
}

func TestPlaceBarrierDelegatesToChild(t *testing.T) {
	profile := textProfile()
	barrier := diagram.NewBarrier(diagram.NewTerminal("x"))
	rec, err := Measure(barrier, profile)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	Place(barrier, rec, profile)

	child := rec.Children[0]
	if child.X != rec.X || child.Y != rec.Y {
		t.Error("Barrier's child should be placed at the same coordinates as the Barrier itself")
	}
}
