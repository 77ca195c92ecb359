// Package render drives the placement+emission pass that turns a
// lowered, wrapped, and optimized [diagram.Node] tree into a finished
// drawing: [Vector] produces a complete SVG document, [Text] produces a
// newline-joined character grid. Both share the same document-order
// walk in emit.go; only the metric.Profile each builds differs.
package render
