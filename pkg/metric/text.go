package metric

import (
	"math"
	"strings"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

// textProfile renders to the character-grid back-end: every unit is one
// terminal cell, box corners and line crossings are stamped with
// box-drawing glyphs, and text measurement is simply rune count (no
// font metrics exist in a monospace grid).
type textProfile struct {
	settings Settings
	resolver HrefResolver
}

// NewTextProfile builds a [Profile] that emits a character grid. Unlike
// the vector back-end there is no heuristic fallback for text
// measurement: width is always exactly the rune count of the label, one
// cell per rune, and height is always exactly 1.
func NewTextProfile(settings Settings) Profile {
	s := fillDefaults(settings)
	resolver := s.HrefResolver
	if resolver == nil {
		resolver = NoopResolver
	}
	return &textProfile{settings: s, resolver: resolver}
}

func (p *textProfile) Spacing() Spacing {
	s := p.settings
	return Spacing{
		HorizontalSeqSeparation:       2,
		VerticalChoiceSeparation:      1,
		VerticalChoiceSeparationOuter: 1,
		VerticalSeqSeparation:         1,
		VerticalSeqSeparationOuter:    1,
		ArcRadius:                     1,
		ArcMargin:                     0,
		ArrowLength:                   0,
		ArrowCrossLength:              0,
		ArrowStyle:                    diagram.NoArrow,
		EndClass:                      s.EndClass,
		Reverse:                       s.Reverse,
	}
}

func (p *textProfile) LeafStyle(kind diagram.Kind) LeafStyle {
	s := p.settings
	switch kind {
	case diagram.KindTerminal:
		return LeafStyle{HorizontalPadding: s.TextTerminalHPadding}
	case diagram.KindNonTerminal:
		return LeafStyle{HorizontalPadding: s.TextNonTerminalHPadding}
	default:
		return LeafStyle{HorizontalPadding: s.TextCommentHPadding}
	}
}

func (p *textProfile) GroupStyle() GroupStyle {
	s := p.settings
	return GroupStyle{
		HorizontalPadding:    s.TextGroupHPadding,
		VerticalPadding:      s.TextGroupVPadding,
		HorizontalMargin:     1,
		VerticalMargin:       1,
		TextHorizontalOffset: s.TextGroupTextHOffset,
		TextVerticalOffset:   s.TextGroupTextVOffset,
	}
}

func (p *textProfile) MaxWidth() float64 { return p.settings.MaxWidth }

func (p *textProfile) MeasureText(_ diagram.Kind, text string) (float64, float64, error) {
	return float64(len([]rune(text))), 1, nil
}

func (p *textProfile) ResolveHref(kind diagram.Kind, text, href, title string, payload any, resolve bool) (string, string, bool, error) {
	if !resolve {
		return href, title, href != "", nil
	}
	url, t, ok, err := p.resolver.Resolve(kind, text, href, title, payload)
	if err != nil {
		return "", "", false, err
	}
	return url, t, ok, nil
}

func (p *textProfile) NewSurface(contentWidth, contentHeight float64, debug bool) Surface {
	w := int(math.Ceil(contentWidth)) + 2
	h := int(math.Ceil(contentHeight)) + 2
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	return &textSurface{grid: grid, debug: debug, ox: 1, oy: 1}
}

// textSurface stamps box-drawing glyphs onto a rune grid. Crossing
// glyphs (e.g. a vertical rail meeting a horizontal one) merge with
// whatever is already in the cell via [mergeGlyph] rather than
// overwrite it, so two rails drawn independently still cross cleanly.
type textSurface struct {
	grid   [][]rune
	debug  bool
	ox, oy float64
	tags   []string
}

func (t *textSurface) cell(x, y float64) (int, int) {
	return int(math.Round(x + t.ox)), int(math.Round(y + t.oy))
}

func (t *textSurface) set(x, y int, r rune) {
	if y < 0 || y >= len(t.grid) || x < 0 || x >= len(t.grid[y]) {
		return
	}
	t.grid[y][x] = mergeGlyph(t.grid[y][x], r)
}

// mergeGlyph combines two box-drawing glyphs occupying the same cell
// into the glyph that has the union of both's connecting edges, e.g. a
// horizontal line '-' crossing a vertical line '|' becomes '+'. A corner
// glyph meeting a horizontal line keeps the corner, since ASCII has no
// T-junction glyph. An incoming glyph this table doesn't recognize (such
// as a label character) simply overwrites, matching how a lone corner
// glyph is placed over blank space.
func mergeGlyph(existing, incoming rune) rune {
	if existing == ' ' || existing == incoming {
		return incoming
	}
	edges := func(r rune) (up, down, left, right bool) {
		switch r {
		case '-':
			return false, false, true, true
		case '|':
			return true, true, false, false
		case '+':
			return true, true, true, true
		case '.', ',':
			return false, true, false, true
		case '\'', '`':
			return true, false, false, true
		}
		return false, false, false, false
	}
	u1, d1, l1, r1 := edges(existing)
	u2, d2, l2, r2 := edges(incoming)
	if !(u2 || d2 || l2 || r2) {
		return incoming
	}
	u, d, l, r := u1 || u2, d1 || d2, l1 || l2, r1 || r2
	switch {
	case u && d && l && r:
		return '+'
	case u && d:
		return '|'
	case u || d:
		if u1 || d1 {
			return existing
		}
		return incoming
	case l && r:
		return '-'
	default:
		return incoming
	}
}

func (t *textSurface) Line(x1, y1, x2, y2 float64) {
	ax, ay := t.cell(x1, y1)
	bx, by := t.cell(x2, y2)
	if ay == by {
		lo, hi := ax, bx
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo; x <= hi; x++ {
			t.set(x, ay, '-')
		}
		return
	}
	if ax == bx {
		lo, hi := ay, by
		if lo > hi {
			lo, hi = hi, lo
		}
		for y := lo; y <= hi; y++ {
			t.set(ax, y, '|')
		}
		return
	}
	// Diagonal segments never occur on the orthogonal character grid; a
	// caller asking for one is an engine bug upstream of this surface.
	t.set(ax, ay, '+')
	t.set(bx, by, '+')
}

func (t *textSurface) Arc(cx, cy, r, startAngle, endAngle float64, sweep bool) {
	sx, sy := t.cell(cx+r*math.Cos(startAngle), cy+r*math.Sin(startAngle))
	ex, ey := t.cell(cx+r*math.Cos(endAngle), cy+r*math.Sin(endAngle))
	goingRight := ex >= sx
	goingDown := ey >= sy
	var glyph rune
	switch {
	case goingRight && goingDown:
		glyph = '.'
	case goingRight && !goingDown:
		glyph = '\''
	case !goingRight && goingDown:
		glyph = ','
	default:
		glyph = '`'
	}
	t.set(sx, sy, glyph)
	t.set(ex, ey, glyph)
}

func (t *textSurface) Box(x, y, w, h, _ float64, _, href, _ string) {
	x0, y0 := t.cell(x, y)
	x1, y1 := t.cell(x+w, y+h)
	for cx := x0; cx <= x1; cx++ {
		t.set(cx, y0, '-')
		t.set(cx, y1, '-')
	}
	for cy := y0; cy <= y1; cy++ {
		t.set(x0, cy, '|')
		t.set(x1, cy, '|')
	}
	t.set(x0, y0, '+')
	t.set(x1, y0, '+')
	t.set(x0, y1, '+')
	t.set(x1, y1, '+')
	if href != "" {
		t.set(x0, y0, '+')
	}
}

func (t *textSurface) Text(x, y, w, h float64, text, _, _, _ string) {
	x0, y0 := t.cell(x, y)
	_, y1 := t.cell(x, y+h)
	midY := (y0 + y1) / 2
	runes := []rune(text)
	pad := int(w) - len(runes)
	start := x0 + 1 + pad/2
	for i, r := range runes {
		t.set(start+i, midY, r)
	}
}

func (t *textSurface) GroupCaption(x, y float64, text, _, _ string) {
	x0, y0 := t.cell(x, y)
	for i, r := range []rune(text) {
		t.set(x0+i, y0, r)
	}
}

func (t *textSurface) EndMarker(x, y, up, down float64, _ bool) {
	px, py := t.cell(x, y)
	_, top := t.cell(x, y-up)
	_, bot := t.cell(x, y+down)
	for cy := top; cy <= bot; cy++ {
		t.set(px, cy, '|')
	}
	_ = py
}

func (t *textSurface) Tag(id string) func() {
	if !t.debug || id == "" {
		return func() {}
	}
	t.tags = append(t.tags, id)
	n := len(t.tags)
	return func() {
		if n <= len(t.tags) {
			t.tags = t.tags[:n-1]
		}
	}
}

func (t *textSurface) String() string {
	lines := make([]string, len(t.grid))
	for i, row := range t.grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
