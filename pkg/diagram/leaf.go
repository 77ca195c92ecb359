package diagram

// Skip is a bare horizontal line: an empty path used inside [Choice] and
// [Optional] to represent "nothing here".
type Skip struct{}

func (Skip) diagramNode() {}

// NewSkip returns a Skip node. It exists mostly for symmetry with the
// other constructors; the zero value Skip{} is just as usable.
func NewSkip() Skip { return Skip{} }

// LeafOption configures the optional fields shared by [Terminal],
// [NonTerminal] and [Comment]. Options are applied in order, so a later
// option overrides an earlier one.
type LeafOption func(*leafFields)

type leafFields struct {
	href         string
	title        string
	cssClass     string
	resolve      bool
	resolveSet   bool
	resolverData any
}

func buildLeaf(opts []LeafOption) leafFields {
	f := leafFields{resolve: true}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithHref makes the node's text into a hyperlink once resolved. It is
// only a hint: the actual URL/title pair used at render time comes from
// metric.Profile's HrefResolver, which receives this value as a
// fallback/seed.
func WithHref(href string) LeafOption {
	return func(f *leafFields) { f.href = href }
}

// WithTitle sets the hyperlink title.
func WithTitle(title string) LeafOption {
	return func(f *leafFields) { f.title = title }
}

// WithCSSClass adds a CSS class to the node's emitted group element (the
// text back-end ignores this).
func WithCSSClass(class string) LeafOption {
	return func(f *leafFields) { f.cssClass = class }
}

// WithResolverData attaches an opaque payload passed through to the
// HrefResolver callback.
func WithResolverData(data any) LeafOption {
	return func(f *leafFields) { f.resolverData = data }
}

// WithResolve overrides whether this node is passed to the HrefResolver
// at all; passing false renders the node using its raw Href/Title as-is.
func WithResolve(resolve bool) LeafOption {
	return func(f *leafFields) { f.resolve, f.resolveSet = resolve, true }
}

// Terminal is a rounded box containing literal text — a literal token in
// a grammar.
type Terminal struct {
	Text         string
	Href         string
	Title        string
	CSSClass     string
	Resolve      bool
	ResolverData any
}

func (*Terminal) diagramNode() {}

// NewTerminal builds a Terminal node. A bare string literal in a
// data-literal tree (see package load) is sugar for this constructor
// with no options.
func NewTerminal(text string, opts ...LeafOption) *Terminal {
	f := buildLeaf(opts)
	return &Terminal{
		Text: text, Href: f.href, Title: f.title,
		CSSClass: f.cssClass, Resolve: f.resolve, ResolverData: f.resolverData,
	}
}

// NonTerminal is a rectangular box containing a named grammar rule
// reference.
type NonTerminal struct {
	Text         string
	Href         string
	Title        string
	CSSClass     string
	Resolve      bool
	ResolverData any
}

func (*NonTerminal) diagramNode() {}

// NewNonTerminal builds a NonTerminal node.
func NewNonTerminal(text string, opts ...LeafOption) *NonTerminal {
	f := buildLeaf(opts)
	return &NonTerminal{
		Text: text, Href: f.href, Title: f.title,
		CSSClass: f.cssClass, Resolve: f.resolve, ResolverData: f.resolverData,
	}
}

// Comment is a low-profile caption box, typically used for free-text
// annotations alongside the grammar itself.
type Comment struct {
	Text         string
	Href         string
	Title        string
	CSSClass     string
	Resolve      bool
	ResolverData any
}

func (*Comment) diagramNode() {}

// NewComment builds a Comment node.
func NewComment(text string, opts ...LeafOption) *Comment {
	f := buildLeaf(opts)
	return &Comment{
		Text: text, Href: f.href, Title: f.title,
		CSSClass: f.cssClass, Resolve: f.resolve, ResolverData: f.resolverData,
	}
}
