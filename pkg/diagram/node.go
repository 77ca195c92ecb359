// Package diagram defines the combinator tree that describes a syntax
// (railroad) diagram: terminals, non-terminals, comments, sequences,
// choices, loops, groups and the structural markers used by the layout
// passes in [github.com/flowshape/syntaxdiagrams/pkg/layout] and
// [github.com/flowshape/syntaxdiagrams/pkg/transform].
//
// The tree is a sealed sum type: [Node] is implemented only by the types
// declared in this package. Downstream passes dispatch on concrete type
// with a type switch rather than virtual methods, so that adding a pass
// is a compile error away from missing a variant (a non-exhaustive type
// switch on a sealed interface is caught by review, not at runtime).
package diagram

// Node is any element of a diagram tree. It is a closed (sealed) set of
// types: [Skip], [Terminal], [NonTerminal], [Comment], [Sequence],
// [Stack], [Choice], [Optional], [OneOrMore], [ZeroOrMore], [Barrier],
// [Group], and the transform-internal fused bypass node.
//
// The tree is never a DAG: every constructor below takes ownership of
// its children by value or by a freshly built slice, so sharing a Node
// between two parents is a caller bug, not something the engine
// protects against at runtime.
type Node interface {
	diagramNode()
}

// Kind distinguishes the three leaf "box" variants, since they share an
// identical field shape but differ in which metric.Profile constants
// and text measure they use.
type Kind int

const (
	// KindTerminal marks a rounded literal-token box.
	KindTerminal Kind = iota
	// KindNonTerminal marks a rectangular named-rule box.
	KindNonTerminal
	// KindComment marks a low-profile caption box.
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonTerminal:
		return "non_terminal"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Break describes how a [Sequence] may wrap between two adjacent
// children. See the package-level docs on [Sequence] for how these
// resolve during the wrapping pass.
type Break int

const (
	// NoBreak forbids a line break at this join; it is always final.
	NoBreak Break = iota
	// Soft allows a line break at this join when the running line would
	// otherwise exceed the advisory max width.
	Soft
	// Hard always breaks a line at this join.
	Hard
	// Default behaves like Soft at the top level and like NoBreak
	// directly inside a Choice, OneOrMore, or an already-produced line.
	Default
)

// Side selects which side of the main line a bypass rail or return path
// runs along.
type Side int

const (
	// Top routes a bypass/return rail above the main line.
	Top Side = iota
	// Bottom routes a bypass/return rail below the main line.
	Bottom
)

// EndClass selects the visual style of a diagram's start/end markers.
type EndClass int

const (
	// Complex emits a stylized double-ended marker (two parallel
	// strokes) at both ends of the root diagram.
	Complex EndClass = iota
	// Simple emits a single perpendicular tick.
	Simple
)

// ArrowStyle selects the shape of directional arrowheads in the vector
// back-end. The text back-end ignores it beyond NoArrow (it always uses
// a fixed glyph set).
type ArrowStyle int

const (
	NoArrow ArrowStyle = iota
	Triangle
	Stealth
	Barb
	Harpoon
	HarpoonUp
)

