package diagram

import "fmt"

// Choice picks one of N alternatives: one (Default) sits on the main
// line, the others bulge above or below it depending on whether their
// index is less than or greater than Default.
type Choice struct {
	Children []Node
	Default  int
}

func (*Choice) diagramNode() {}

// NewChoice builds a Choice, validating that Default indexes an
// existing child.
func NewChoice(children []Node, def int) (*Choice, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("diagram: choice must have at least one alternative")
	}
	if def < 0 || def >= len(children) {
		return nil, fmt.Errorf(
			"diagram: choice default %d out of range [0, %d)", def, len(children),
		)
	}
	cp := make([]Node, len(children))
	copy(cp, children)
	return &Choice{Children: cp, Default: def}, nil
}

// Optional is sugar for Choice(Skip, Child) or Choice(Child, Skip).
// [Lower] rewrites it into that plain Choice before the optimization
// pass ([github.com/flowshape/syntaxdiagrams/pkg/transform.Optimize])
// runs, and that pass recognizes the lowered two-alternative shape to
// fuse adjacent bypass rails.
//
// Skip selects which alternative is the bypass: Skip==false puts Child
// on the main line and the empty path above/below it; Skip==true puts
// the empty path on the main line and Child on the bypass. SkipSide
// selects which side of Child the empty path sits on: with Skip==false
// the empty-path rail is drawn above (Top) or below (Bottom) the main
// line; with Skip==true Child is drawn on the opposite side, below the
// main line for Top and above it for Bottom.
type Optional struct {
	Child    Node
	Skip     bool
	SkipSide Side
}

func (*Optional) diagramNode() {}

// NewOptional builds an Optional node. By default the child sits on the
// main line with a bypass above it (Skip=false, SkipSide=Top).
func NewOptional(child Node, opts ...OptionalOption) *Optional {
	o := &Optional{Child: child, SkipSide: Top}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OptionalOption configures an [Optional] node.
type OptionalOption func(*Optional)

// WithSkip, when true, renders the optional element off the main line
// (the empty path sits on the main line instead).
func WithSkip(skip bool) OptionalOption {
	return func(o *Optional) { o.Skip = skip }
}

// WithSkipBottom, when true, puts the empty path below the element
// instead of above: the bypass rail runs below the main line, or, with
// [WithSkip], the element is drawn above the main line.
func WithSkipBottom(bottom bool) OptionalOption {
	return func(o *Optional) {
		if bottom {
			o.SkipSide = Bottom
		} else {
			o.SkipSide = Top
		}
	}
}

// Lower rewrites o into its canonical two-alternative Choice, per
// spec.md §3.1: whichever of Child/Skip is NOT Default sits at the
// index before Default (so it bulges above the main line) or after
// (so it bulges below).
func (o *Optional) lower() *Choice {
	skipNode := Node(Skip{})
	if o.Skip {
		// The element itself is the bypass; the empty path is the main
		// line. SkipSide places the empty path relative to Child, so Top
		// puts Child after the default (it renders below) and Bottom
		// puts Child before it (above).
		if o.SkipSide == Top {
			c, _ := NewChoice([]Node{skipNode, o.Child}, 0)
			return c
		}
		c, _ := NewChoice([]Node{o.Child, skipNode}, 1)
		return c
	}
	// The element is the main line; the empty path is the bypass.
	if o.SkipSide == Top {
		c, _ := NewChoice([]Node{skipNode, o.Child}, 1)
		return c
	}
	c, _ := NewChoice([]Node{o.Child, skipNode}, 0)
	return c
}
