package diagram

// Barrier is transparent at layout time — it measures and renders
// exactly as Child would — but opaque to the optimization pass: a
// bypass rail fusion (see package transform) will never reach across a
// Barrier into or out of its child.
type Barrier struct {
	Child Node
}

func (*Barrier) diagramNode() {}

// NewBarrier wraps child in a Barrier.
func NewBarrier(child Node) *Barrier {
	return &Barrier{Child: child}
}
