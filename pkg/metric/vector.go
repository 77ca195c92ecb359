package metric

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

// vectorProfile renders to the SVG back-end via github.com/ajstarks/svgo.
// Coordinates are float64 pixels throughout the layout passes and are
// only rounded to the integers svgo's API expects at the point a
// primitive is actually emitted.
type vectorProfile struct {
	settings Settings
	measure  TextMeasure
	resolver HrefResolver
}

// NewVectorProfile builds a [Profile] that emits SVG. A nil
// settings.TextMeasure falls back to a heuristic average-glyph-width
// estimate (spec.md §4.5: "otherwise a heuristic average glyph width is
// used"); a nil settings.HrefResolver falls back to [NoopResolver].
func NewVectorProfile(settings Settings) Profile {
	s := fillDefaults(settings)
	measure := s.TextMeasure
	if measure == nil {
		measure = heuristicTextMeasure{}
	}
	resolver := s.HrefResolver
	if resolver == nil {
		resolver = NoopResolver
	}
	return &vectorProfile{settings: s, measure: measure, resolver: resolver}
}

// heuristicTextMeasure estimates width as glyph count times an average
// advance width, the fallback spec.md §4.5 describes for a vector
// back-end with no "TrueTextMeasure (glyph-table-backed)" supplied.
type heuristicTextMeasure struct{}

const averageGlyphWidth = 7.5
const lineHeight = 12.0

func (heuristicTextMeasure) Measure(_ diagram.Kind, text string) (float64, float64, error) {
	return float64(len([]rune(text))) * averageGlyphWidth, lineHeight, nil
}

func (p *vectorProfile) Spacing() Spacing {
	s := p.settings
	return Spacing{
		HorizontalSeqSeparation:       s.HorizontalSeqSeparation,
		VerticalChoiceSeparation:      s.VerticalChoiceSeparation,
		VerticalChoiceSeparationOuter: s.VerticalChoiceSeparationOuter,
		VerticalSeqSeparation:         s.VerticalSeqSeparation,
		VerticalSeqSeparationOuter:    s.VerticalSeqSeparationOuter,
		ArcRadius:                     s.ArcRadius,
		ArcMargin:                     s.ArcMargin,
		ArrowLength:                   s.ArrowLength,
		ArrowCrossLength:              s.ArrowCrossLength,
		ArrowStyle:                    s.ArrowStyle,
		EndClass:                      s.EndClass,
		Reverse:                       s.Reverse,
	}
}

func (p *vectorProfile) LeafStyle(kind diagram.Kind) LeafStyle {
	s := p.settings
	switch kind {
	case diagram.KindTerminal:
		return LeafStyle{s.TerminalHPadding, s.TerminalVPadding, s.TerminalRadius}
	case diagram.KindNonTerminal:
		return LeafStyle{s.NonTerminalHPadding, s.NonTerminalVPadding, s.NonTerminalRadius}
	default:
		return LeafStyle{s.CommentHPadding, s.CommentVPadding, s.CommentRadius}
	}
}

func (p *vectorProfile) GroupStyle() GroupStyle {
	s := p.settings
	return GroupStyle{
		HorizontalPadding: s.GroupHPadding, VerticalPadding: s.GroupVPadding,
		HorizontalMargin: s.GroupHMargin, VerticalMargin: s.GroupVMargin,
		Radius: s.GroupRadius,
		TextHorizontalOffset: s.GroupTextHOffset, TextVerticalOffset: s.GroupTextVOffset,
	}
}

func (p *vectorProfile) MaxWidth() float64 { return p.settings.MaxWidth }

func (p *vectorProfile) MeasureText(kind diagram.Kind, text string) (float64, float64, error) {
	w, h, err := p.measure.Measure(kind, text)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func (p *vectorProfile) ResolveHref(kind diagram.Kind, text, href, title string, payload any, resolve bool) (string, string, bool, error) {
	if !resolve {
		return href, title, href != "", nil
	}
	url, t, ok, err := p.resolver.Resolve(kind, text, href, title, payload)
	if err != nil {
		return "", "", false, err
	}
	return url, t, ok, nil
}

func (p *vectorProfile) NewSurface(contentWidth, contentHeight float64, debug bool) Surface {
	width := int(math.Ceil(contentWidth)) + 8
	height := int(math.Ceil(contentHeight)) + 8
	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	if p.settings.Title != "" {
		canvas.Writer.Write([]byte(fmt.Sprintf("<title>%s</title>\n", escapeXML(p.settings.Title))))
	}
	if p.settings.Description != "" {
		canvas.Writer.Write([]byte(fmt.Sprintf("<desc>%s</desc>\n", escapeXML(p.settings.Description))))
	}
	if p.settings.CSSStyle != "" {
		canvas.Style("text/css", p.settings.CSSStyle)
	}
	return &vectorSurface{
		canvas: canvas, buf: buf, settings: p.settings, debug: debug,
		ox: 4, oy: 4,
	}
}

// vectorSurface accumulates SVG output using svgo's element writers.
// Every primitive offsets by (ox, oy) so the root diagram's content box
// starts a few pixels in from the document edge.
type vectorSurface struct {
	canvas   *svg.SVG
	buf      *bytes.Buffer
	settings Settings
	debug    bool
	ox, oy   float64
}

func (v *vectorSurface) pt(x, y float64) (int, int) {
	return int(math.Round(x + v.ox)), int(math.Round(y + v.oy))
}

func (v *vectorSurface) Line(x1, y1, x2, y2 float64) {
	ax, ay := v.pt(x1, y1)
	bx, by := v.pt(x2, y2)
	v.canvas.Line(ax, ay, bx, by, `class="diagram-line"`)
}

func (v *vectorSurface) Arc(cx, cy, r, startAngle, endAngle float64, sweep bool) {
	sx, sy := v.pt(cx+r*math.Cos(startAngle), cy+r*math.Sin(startAngle))
	ex, ey := v.pt(cx+r*math.Cos(endAngle), cy+r*math.Sin(endAngle))
	large := math.Abs(endAngle-startAngle) > math.Pi
	v.canvas.Arc(sx, sy, int(math.Round(r)), int(math.Round(r)), 0, large, sweep, ex, ey,
		`class="diagram-arc" fill="none"`)
}

func (v *vectorSurface) Box(x, y, w, h, r float64, cssClass, href, title string) {
	if href != "" {
		v.canvas.Link(href, title)
		defer v.canvas.LinkEnd()
	}
	bx, by := v.pt(x, y)
	class := strings.TrimSpace("diagram-box " + cssClass)
	if r > 0 {
		v.canvas.Roundrect(bx, by, int(math.Round(w)), int(math.Round(h)),
			int(math.Round(r)), int(math.Round(r)), fmt.Sprintf(`class=%q`, class))
	} else {
		v.canvas.Rect(bx, by, int(math.Round(w)), int(math.Round(h)), fmt.Sprintf(`class=%q`, class))
	}
}

func (v *vectorSurface) Text(x, y, w, h float64, text, cssClass, href, title string) {
	if href != "" {
		v.canvas.Link(href, title)
		defer v.canvas.LinkEnd()
	}
	tx, ty := v.pt(x+w/2, y+h/2+lineHeight/3)
	class := strings.TrimSpace("diagram-text " + cssClass)
	v.canvas.Text(tx, ty, text, fmt.Sprintf(`class=%q text-anchor="middle"`, class))
}

func (v *vectorSurface) GroupCaption(x, y float64, text, href, title string) {
	if href != "" {
		v.canvas.Link(href, title)
		defer v.canvas.LinkEnd()
	}
	tx, ty := v.pt(x, y)
	v.canvas.Text(tx, ty, text, `class="diagram-group-caption"`)
}

func (v *vectorSurface) EndMarker(x, y, up, down float64, start bool) {
	px, py := v.pt(x, y)
	switch v.settings.EndClass {
	case diagram.Simple:
		v.canvas.Line(px, py-int(math.Round(up)), px, py+int(math.Round(down)), `class="diagram-end"`)
	default:
		offset := 3
		if v.settings.Reverse == start {
			offset = -3
		}
		v.canvas.Line(px, py-int(math.Round(up)), px, py+int(math.Round(down)), `class="diagram-end"`)
		v.canvas.Line(px+offset, py-int(math.Round(up)), px+offset, py+int(math.Round(down)), `class="diagram-end"`)
	}
}

func (v *vectorSurface) Tag(id string) func() {
	if !v.debug || id == "" {
		return func() {}
	}
	v.canvas.Group(fmt.Sprintf(`data-path=%q`, id))
	return func() { v.canvas.Gend() }
}

func (v *vectorSurface) String() string {
	v.canvas.End()
	return v.buf.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
