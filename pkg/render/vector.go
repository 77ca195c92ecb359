package render

import (
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Vector renders tree to a complete SVG document using settings,
// per spec.md §6's render_vector entry point. A zero-valued Settings
// field falls back to the named default from [metric.DefaultSettings].
func Vector(tree diagram.Node, settings metric.Settings) (string, error) {
	profile := metric.NewVectorProfile(settings)
	return run(tree, profile, false)
}

// VectorDebug is [Vector] with the parallel debug-identifier artifact
// (spec.md §4.5) enabled: every emitted shape group is tagged with a
// stable identifier derived from its position in the tree.
func VectorDebug(tree diagram.Node, settings metric.Settings) (string, error) {
	profile := metric.NewVectorProfile(settings)
	return run(tree, profile, true)
}
