package render

import (
	"math"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/layout"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
	"github.com/flowshape/syntaxdiagrams/pkg/transform"
)

// run drives the full pipeline from spec.md §2: Lower, then Wrap (which
// measures each candidate sequence's children itself), then Optimize
// (which measures each fusion candidate itself), then a Measure feeding
// Place, then the document-order Emit walk. Every pass
// after Lower re-measures rather than threading one Record tree through
// tree-rewriting passes, since a rewrite invalidates any Record built
// over the pre-rewrite shape.
func run(tree diagram.Node, profile metric.Profile, debug bool) (string, error) {
	lowered := diagram.Lower(tree)

	wrapped, err := transform.Wrap(lowered, profile)
	if err != nil {
		return "", err
	}

	optimized, err := transform.Optimize(wrapped, profile)
	if err != nil {
		return "", err
	}

	rec, err := layout.Measure(optimized, profile)
	if err != nil {
		return "", err
	}
	layout.Place(optimized, rec, profile)

	if profile.Spacing().Reverse {
		mirror(rec, rec.Width)
	}

	surface := profile.NewSurface(rec.Width, rec.Height(), debug)
	emitEndMarkers(rec, profile, surface)
	if err := emitNode(optimized, rec, profile, surface, "0"); err != nil {
		return "", err
	}
	return surface.String(), nil
}

// mirror horizontally flips every absolute X in place, implementing
// spec.md §4.4's reverse-layout flag ("the cursor starts at the right
// edge and all X offsets are negated"). Applied post-placement rather
// than during it, so Place's geometry stays simple in the common case.
// [emitEndMarkers] passes the same start/end flags either way; only the
// vector back-end's EndMarker reads the Reverse setting. This pass only
// relocates boxes, text, and arcs.
func mirror(rec *layout.Record, width float64) {
	rec.X = width - rec.X - rec.Width
	for _, c := range rec.Children {
		mirror(c, width)
	}
}

func emitEndMarkers(rec *layout.Record, profile metric.Profile, surface metric.Surface) {
	spacing := profile.Spacing()
	up, down := rec.Up, rec.Down
	if spacing.EndClass == diagram.Simple {
		up, down = math.Min(up, spacing.ArcRadius), math.Min(down, spacing.ArcRadius)
	}
	surface.EndMarker(rec.X, rec.Y, up, down, true)
	surface.EndMarker(rec.X+rec.Width, rec.Y, up, down, false)
}
