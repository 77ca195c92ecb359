package diagram

// Group draws a captioned rectangle around Child.
type Group struct {
	Child    Node
	Text     string
	Href     string
	Title    string
	CSSClass string
}

func (*Group) diagramNode() {}

// GroupOption configures a [Group] node.
type GroupOption func(*Group)

// WithGroupHref makes the group's caption into a hyperlink.
func WithGroupHref(href string) GroupOption { return func(g *Group) { g.Href = href } }

// WithGroupTitle sets the hyperlink title for the group's caption.
func WithGroupTitle(title string) GroupOption { return func(g *Group) { g.Title = title } }

// WithGroupCSSClass adds a CSS class to the group's emitted rectangle.
func WithGroupCSSClass(class string) GroupOption {
	return func(g *Group) { g.CSSClass = class }
}

// NewGroup wraps child in a captioned box.
func NewGroup(child Node, text string, opts ...GroupOption) *Group {
	g := &Group{Child: child, Text: text}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
