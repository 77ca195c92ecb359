package diagram

// OneOrMore is a forward path through Body and a backward return path
// carrying Repeat (a separator, [Skip] by default). RepeatTop places the
// return path above the body instead of below.
//
// RepeatTop exists for parity with the upstream implementation this
// engine is modeled on, which exposes the flag but discourages its use.
// It is independent of a wrapping [ZeroOrMore]'s Skip/SkipSide: see the
// Open Question resolution in DESIGN.md for why the two never conflict.
type OneOrMore struct {
	Body      Node
	Repeat    Node
	RepeatTop bool
}

func (*OneOrMore) diagramNode() {}

// LoopOption configures a [OneOrMore] or [ZeroOrMore] node.
type LoopOption func(*loopFields)

type loopFields struct {
	repeat    Node
	repeatTop bool
	skip      bool
	skipSide  Side
}

func buildLoop(opts []LoopOption) loopFields {
	f := loopFields{repeat: Skip{}, skipSide: Top}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithRepeat sets the element drawn on the backward/return path (the
// loop separator). Defaults to [Skip].
func WithRepeat(repeat Node) LoopOption {
	return func(f *loopFields) { f.repeat = repeat }
}

// WithRepeatTop routes the return path above the body instead of below.
func WithRepeatTop(top bool) LoopOption {
	return func(f *loopFields) { f.repeatTop = top }
}

// WithLoopSkip, for [ZeroOrMore] only, mirrors [WithSkip] on Optional.
func WithLoopSkip(skip bool) LoopOption {
	return func(f *loopFields) { f.skip = skip }
}

// WithLoopSkipBottom, for [ZeroOrMore] only, mirrors [WithSkipBottom].
func WithLoopSkipBottom(bottom bool) LoopOption {
	return func(f *loopFields) {
		if bottom {
			f.skipSide = Bottom
		} else {
			f.skipSide = Top
		}
	}
}

// NewOneOrMore builds a OneOrMore node around body.
func NewOneOrMore(body Node, opts ...LoopOption) *OneOrMore {
	f := buildLoop(opts)
	return &OneOrMore{Body: body, Repeat: f.repeat, RepeatTop: f.repeatTop}
}

// ZeroOrMore is sugar for Optional(OneOrMore(Body, Repeat, RepeatTop),
// Skip, SkipSide): a loop that may run zero times.
type ZeroOrMore struct {
	Body      Node
	Repeat    Node
	RepeatTop bool
	Skip      bool
	SkipSide  Side
}

func (*ZeroOrMore) diagramNode() {}

// NewZeroOrMore builds a ZeroOrMore node around body.
func NewZeroOrMore(body Node, opts ...LoopOption) *ZeroOrMore {
	f := buildLoop(opts)
	return &ZeroOrMore{
		Body: body, Repeat: f.repeat, RepeatTop: f.repeatTop,
		Skip: f.skip, SkipSide: f.skipSide,
	}
}

// lower rewrites z into Optional(OneOrMore(Body, Repeat, RepeatTop)).
func (z *ZeroOrMore) lower() *Optional {
	oom := NewOneOrMore(z.Body, WithRepeat(z.Repeat), WithRepeatTop(z.RepeatTop))
	return NewOptional(oom, WithSkip(z.Skip), WithSkipBottom(z.SkipSide == Bottom))
}
