package render

import (
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Text renders tree to a character grid, newline-joined one row per
// line, per spec.md §6's render_text entry point.
func Text(tree diagram.Node, settings metric.Settings) (string, error) {
	profile := metric.NewTextProfile(settings)
	return run(tree, profile, false)
}

// TextDebug is [Text] with the debug flag passed to the text surface.
// The surface tracks each node's tree-path identifier while emitting
// but does not write the identifiers out, so the returned grid is the
// same as [Text]'s.
func TextDebug(tree diagram.Node, settings metric.Settings) (string, error) {
	profile := metric.NewTextProfile(settings)
	return run(tree, profile, true)
}
