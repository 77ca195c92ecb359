package metric

import (
	"strings"
	"testing"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

func TestMergeGlyphCrossings(t *testing.T) {
	tests := []struct {
		name     string
		existing rune
		incoming rune
		want     rune
	}{
		{"blank takes incoming", ' ', '-', '-'},
		{"identical glyphs are a no-op", '-', '-', '-'},
		{"horizontal crosses vertical", '-', '|', '+'},
		{"vertical crosses horizontal", '|', '-', '+'},
		{"corner absorbs horizontal", '.', '-', '.'},
		{"plus absorbs anything", '+', '|', '+'},
		{"unrecognized glyph overwrites", '@', '-', '-'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeGlyph(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("mergeGlyph(%q, %q) = %q, want %q", tt.existing, tt.incoming, got, tt.want)
			}
		})
	}
}

func TestTextProfileMeasureTextIsRuneCount(t *testing.T) {
	p := NewTextProfile(DefaultSettings())
	w, h, err := p.MeasureText(diagram.KindTerminal, "héllo")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if w != 5 {
		t.Errorf("width = %v, want 5 runes", w)
	}
	if h != 1 {
		t.Errorf("height = %v, want 1", h)
	}
}

func TestTextSurfaceBoxDrawsRectangleCorners(t *testing.T) {
	p := NewTextProfile(DefaultSettings())
	surface := p.NewSurface(4, 2, false)
	surface.Box(0, 0, 4, 2, 0, "", "", "")
	out := surface.String()
	if strings.Count(out, "+") != 4 {
		t.Errorf("a rectangle should stamp exactly 4 corners, got %d:\n%s", strings.Count(out, "+"), out)
	}
	if !strings.Contains(out, "-") || !strings.Contains(out, "|") {
		t.Errorf("a rectangle should stamp both horizontal and vertical edges:\n%s", out)
	}
}

func TestTextSurfaceLineAndBoxMergeAtIntersection(t *testing.T) {
	p := NewTextProfile(DefaultSettings())
	surface := p.NewSurface(4, 4, false)
	surface.Box(0, 0, 4, 4, 0, "", "", "")
	before := strings.Count(surface.String(), "+")

	// A horizontal line crossing the box's left vertical edge should merge
	// into a '+' rather than overwrite the box's own edge glyph.
	surface.Line(-1, 2, 1, 2)
	after := strings.Count(surface.String(), "+")
	if after != before+1 {
		t.Errorf("crossing a line over a box edge should add one merged '+' corner: before=%d after=%d", before, after)
	}
}
