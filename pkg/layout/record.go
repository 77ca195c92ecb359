// Package layout implements the measurement and placement passes from
// spec.md §4.1 and §4.4: turning a lowered, already-wrapped combinator
// tree into absolute coordinates, bottom-up then top-down.
package layout

import "github.com/flowshape/syntaxdiagrams/pkg/diagram"

// Record is the transient per-node layout state from spec.md §3.3: the
// node's intrinsic extents after measurement, and its absolute
// placement after the placement pass. A Record tree is rebuilt fresh
// for every render and discarded with it — there is no persistent
// layout state (spec.md §5).
type Record struct {
	Node diagram.Node

	// Set by Measure.
	Width         float64
	Up, Down      float64
	EntryY, ExitY float64
	Children      []*Record

	// Set by Place; zero until then. X, Y is the node's entry
	// connector in absolute coordinates.
	X, Y float64
}

// Height returns the node's total vertical extent.
func (r *Record) Height() float64 { return r.Up + r.Down }
