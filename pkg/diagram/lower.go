package diagram

// Lower recursively rewrites every [Optional] into its equivalent
// [Choice] and every [ZeroOrMore] into its equivalent
// Optional(OneOrMore(...)) — which Lower then immediately lowers again
// into a Choice. Everything else is copied structurally, recursing into
// children.
//
// Calling Lower once before measurement means the later passes
// (measure, wrap, optimize, place) only ever need to handle five
// canonical composite variants (Sequence, Stack, Choice, OneOrMore,
// Barrier/Group) instead of ten — see design note in SPEC_FULL.md §9.
//
// Lowering is idempotent and side-effect free: Lower(Lower(n)) produces
// a tree equal in shape to Lower(n), and rendering either yields
// byte-identical output (the "idempotence of lowering" property from
// spec.md §8).
func Lower(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nil
	case Skip:
		return v
	case *Terminal, *NonTerminal, *Comment:
		return v
	case *Sequence:
		return &Sequence{Children: lowerAll(v.Children), Breaks: append([]Break(nil), v.Breaks...)}
	case *Stack:
		return &Stack{Rows: lowerAll(v.Rows)}
	case *Choice:
		return &Choice{Children: lowerAll(v.Children), Default: v.Default}
	case *Optional:
		lowered := &Optional{Child: Lower(v.Child), Skip: v.Skip, SkipSide: v.SkipSide}
		return lowered.lower()
	case *OneOrMore:
		return &OneOrMore{Body: Lower(v.Body), Repeat: Lower(v.Repeat), RepeatTop: v.RepeatTop}
	case *ZeroOrMore:
		lowered := &ZeroOrMore{
			Body: Lower(v.Body), Repeat: Lower(v.Repeat), RepeatTop: v.RepeatTop,
			Skip: v.Skip, SkipSide: v.SkipSide,
		}
		return Lower(lowered.lower())
	case *Barrier:
		return &Barrier{Child: Lower(v.Child)}
	case *Group:
		return &Group{
			Child: Lower(v.Child), Text: v.Text, Href: v.Href,
			Title: v.Title, CSSClass: v.CSSClass,
		}
	case *FusedBypass:
		return &FusedBypass{Mains: lowerAll(v.Mains), Side: v.Side}
	default:
		panic("diagram: Lower: unhandled node type")
	}
}

func lowerAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, c := range nodes {
		out[i] = Lower(c)
	}
	return out
}
