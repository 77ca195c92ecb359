package diagram

// FusedBypass is the internal node the optimization pass
// ([github.com/flowshape/syntaxdiagrams/pkg/transform.Optimize])
// introduces when it merges two adjacent bypass rails that would
// otherwise be drawn as two separate parallel arcs. It is not part of
// the public combinator vocabulary — callers never construct one by
// hand, and the loader in package load never produces one — but it is
// a first-class [Node] so that the measurement and placement passes
// handle it uniformly rather than special-casing optimized output.
//
// Mains holds the elements that remain on the main line (one per fused
// [Optional]'s non-skip branch, in order); Side says which side of the
// main line the
// single shared rail runs on.
type FusedBypass struct {
	Mains []Node
	Side  Side
}

func (*FusedBypass) diagramNode() {}

// NewFusedBypass builds a FusedBypass node. Exported so package
// transform (a sibling, not a sub-package, of diagram) can construct
// it; other callers should not.
func NewFusedBypass(mains []Node, side Side) *FusedBypass {
	cp := make([]Node, len(mains))
	copy(cp, mains)
	return &FusedBypass{Mains: cp, Side: side}
}
