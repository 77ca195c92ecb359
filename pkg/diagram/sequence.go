package diagram

import "fmt"

// Sequence is a horizontal concatenation of children with a per-join
// break hint. Breaks has either length 0 (every join is [NoBreak], i.e.
// the sequence never wraps — this is what a bare list literal in a
// data-literal tree produces), length 1 (the single value applies to
// every join), or exactly len(Children)-1 (one hint per join).
//
// A Sequence carrying any [Soft], [Hard] or [Default] join, once
// resolved, is rewritten into a [Stack] of single-line Sequences by the
// wrapping pass in
// [github.com/flowshape/syntaxdiagrams/pkg/transform.Wrap]; by the time
// the measurement pass sees it for the final time, every remaining
// Sequence carries only [NoBreak] joins.
type Sequence struct {
	Children []Node
	Breaks   []Break
}

func (*Sequence) diagramNode() {}

// NewSequence builds a Sequence, validating that breaks has an
// acceptable length. An empty children slice is legal and measures as
// [Skip].
func NewSequence(children []Node, breaks ...Break) (*Sequence, error) {
	if len(breaks) > 1 && len(breaks) != max(0, len(children)-1) {
		return nil, fmt.Errorf(
			"diagram: sequence breaks length %d does not match children-1 %d",
			len(breaks), len(children)-1,
		)
	}
	cp := make([]Node, len(children))
	copy(cp, children)
	return &Sequence{Children: cp, Breaks: append([]Break(nil), breaks...)}, nil
}

// ResolvedBreaks returns one Break per join (len(Children)-1 entries),
// expanding the scalar/empty shorthand forms.
func (s *Sequence) ResolvedBreaks() []Break {
	joins := len(s.Children) - 1
	if joins <= 0 {
		return nil
	}
	switch len(s.Breaks) {
	case 0:
		out := make([]Break, joins)
		for i := range out {
			out[i] = NoBreak
		}
		return out
	case 1:
		out := make([]Break, joins)
		for i := range out {
			out[i] = s.Breaks[0]
		}
		return out
	default:
		return s.Breaks
	}
}

// HasWrapCandidate reports whether any join could still produce a line
// break, i.e. whether the wrapping pass has work to do on this node.
func (s *Sequence) HasWrapCandidate() bool {
	for _, b := range s.ResolvedBreaks() {
		if b != NoBreak {
			return true
		}
	}
	return false
}

// Stack is a vertical concatenation of rows, each row a full
// sub-diagram, connected by return arcs. It is produced directly by
// callers building multi-row diagrams by hand, and indirectly by the
// wrapping pass rewriting a wide [Sequence].
type Stack struct {
	Rows []Node
}

func (*Stack) diagramNode() {}

// NewStack builds a Stack from one or more rows.
func NewStack(rows ...Node) *Stack {
	cp := make([]Node, len(rows))
	copy(cp, rows)
	return &Stack{Rows: cp}
}
