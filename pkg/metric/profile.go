// Package metric defines the "metric profile" abstraction from
// spec.md §3.2: the bundle of spacing constants, per-kind box
// constants, an injected text measure, an injected href resolver, and a
// drawing surface that the layout passes and back-ends are
// parameterized over. A [Profile] is the only thing that differs
// between rendering to the vector back-end and the character-grid
// back-end; package layout and package transform never import either
// back-end directly.
package metric

import "github.com/flowshape/syntaxdiagrams/pkg/diagram"

// Spacing bundles the numeric constants spec.md §3.2 lists as
// "Spacing constants": separation between siblings, choice/stack
// separation (inner and outer; package layout's Measure and Place use
// only the inner pair), arc geometry, arrow
// geometry, and the two global flags (end class, reverse).
type Spacing struct {
	HorizontalSeqSeparation float64

	VerticalChoiceSeparation      float64
	VerticalChoiceSeparationOuter float64
	VerticalSeqSeparation         float64
	VerticalSeqSeparationOuter    float64

	ArcRadius float64
	ArcMargin float64

	ArrowLength     float64
	ArrowCrossLength float64
	ArrowStyle      diagram.ArrowStyle

	EndClass diagram.EndClass
	Reverse  bool
}

// LeafStyle bundles the per-kind constants used by [Terminal],
// [NonTerminal] and [Comment].
type LeafStyle struct {
	HorizontalPadding float64
	VerticalPadding   float64
	Radius            float64
}

// GroupStyle bundles the constants used by [Group].
type GroupStyle struct {
	HorizontalPadding float64
	VerticalPadding   float64
	HorizontalMargin  float64
	VerticalMargin    float64
	Radius            float64
	TextHorizontalOffset float64
	TextVerticalOffset   float64
}

// TextMeasure is the injected text-measurement capability from
// spec.md §3.2: given a string and the node kind it appears in, it
// returns the text's width and height in the profile's native unit.
// Implementations must not mutate shared state in a way that's unsafe
// for concurrent use by distinct Profile instances; see spec.md §5.
type TextMeasure interface {
	Measure(kind diagram.Kind, text string) (width, height float64, err error)
}

// TextMeasureFunc adapts a function to a [TextMeasure].
type TextMeasureFunc func(kind diagram.Kind, text string) (float64, float64, error)

func (f TextMeasureFunc) Measure(kind diagram.Kind, text string) (float64, float64, error) {
	return f(kind, text)
}

// HrefResolver is the injected hyperlink-resolution capability from
// spec.md §3.2. A node's raw Href/Title are passed through along with
// its resolver payload; the resolver returns the actual URL/title to
// render, or ok=false to render the node as plain (non-linked) content.
type HrefResolver interface {
	Resolve(kind diagram.Kind, text, href, title string, payload any) (url, resolvedTitle string, ok bool, err error)
}

// HrefResolverFunc adapts a function to an [HrefResolver].
type HrefResolverFunc func(kind diagram.Kind, text, href, title string, payload any) (string, string, bool, error)

func (f HrefResolverFunc) Resolve(kind diagram.Kind, text, href, title string, payload any) (string, string, bool, error) {
	return f(kind, text, href, title, payload)
}

// NoopResolver never resolves a link: it renders every node using
// exactly the Href/Title it was given (which is the spec.md §3.2
// default: "default returns none").
var NoopResolver HrefResolver = HrefResolverFunc(
	func(_ diagram.Kind, _, href, title string, _ any) (string, string, bool, error) {
		return href, title, href != "", nil
	},
)

// Profile bundles everything the layout passes and a single back-end
// need: spacing and per-kind constants, the two injected capabilities,
// and a factory for a fresh drawing [Surface]. A Profile is immutable
// and safe to share across concurrent renders as long as any injected
// TextMeasure/HrefResolver it wraps is itself safe for concurrent use
// (spec.md §5).
type Profile interface {
	Spacing() Spacing
	LeafStyle(kind diagram.Kind) LeafStyle
	GroupStyle() GroupStyle
	MaxWidth() float64

	MeasureText(kind diagram.Kind, text string) (width, height float64, err error)
	ResolveHref(kind diagram.Kind, text, href, title string, payload any, resolve bool) (url, resolvedTitle string, ok bool, err error)

	// NewSurface returns a fresh drawing accumulator sized to hold a
	// diagram of the given content width/height (in the profile's native
	// unit, i.e. pixels for vector, cells for text), before any
	// end-marker or outer padding is added. debug enables the parallel
	// debug-identifier artifact from spec.md §4.5/§9.
	NewSurface(contentWidth, contentHeight float64, debug bool) Surface
}

// Surface is the drawing-primitive interface from spec.md §3.2: a
// back-end-specific accumulator that the placement+emission pass
// (package render) calls in document order. Coordinates are always in
// the profile's native unit, with the origin at the top-left of the
// diagram's content box (the caller has already added end-marker and
// outer padding to the Surface's own bounds via NewSurface).
type Surface interface {
	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64)
	// Arc draws a quarter- or half-circle arc centered at (cx, cy) with
	// the given radius, sweeping from startAngle to endAngle (radians,
	// 0 = pointing right, increasing clockwise in screen space). sweep
	// selects the clockwise/counterclockwise SVG sweep flag; the text
	// back-end ignores it beyond picking a rounded-corner glyph.
	Arc(cx, cy, r, startAngle, endAngle float64, sweep bool)
	// Box draws a (possibly rounded) rectangle, optionally a hyperlink.
	Box(x, y, w, h, r float64, cssClass, href, title string)
	// Text draws a centered text label inside the box at (x, y, w, h).
	Text(x, y, w, h float64, text, cssClass, href, title string)
	// GroupCaption draws a group's caption label at an already-offset
	// position.
	GroupCaption(x, y float64, text, href, title string)
	// EndMarker draws a start/end marker per the profile's EndClass.
	EndMarker(x, y float64, up, down float64, start bool)
	// Tag opens a debug scope identified by id; the returned function
	// closes it. A no-debug Surface returns a no-op closer.
	Tag(id string) (closeTag func())

	// String returns the finished artifact: a complete vector document
	// or a newline-joined character grid.
	String() string
}
