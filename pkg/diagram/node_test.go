package diagram

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTerminal, "terminal"},
		{KindNonTerminal, "non_terminal"},
		{KindComment, "comment"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewSequenceBreaksLength(t *testing.T) {
	children := []Node{NewTerminal("a"), NewTerminal("b"), NewTerminal("c")}

	if _, err := NewSequence(children, Soft, Hard); err != nil {
		t.Fatalf("one break per join should be accepted: %v", err)
	}
	if _, err := NewSequence(children, Soft); err != nil {
		t.Fatalf("a single scalar break should be accepted: %v", err)
	}
	if _, err := NewSequence(children); err != nil {
		t.Fatalf("no breaks should be accepted: %v", err)
	}
	if _, err := NewSequence(children, Soft, Hard, Soft); err == nil {
		t.Error("wrong-length breaks should be rejected")
	}
}

func TestSequenceResolvedBreaks(t *testing.T) {
	children := []Node{NewTerminal("a"), NewTerminal("b"), NewTerminal("c")}

	seq, _ := NewSequence(children)
	if got := seq.ResolvedBreaks(); len(got) != 2 || got[0] != NoBreak || got[1] != NoBreak {
		t.Errorf("empty breaks should resolve to all NoBreak, got %v", got)
	}

	seq, _ = NewSequence(children, Soft)
	if got := seq.ResolvedBreaks(); len(got) != 2 || got[0] != Soft || got[1] != Soft {
		t.Errorf("scalar break should resolve to all Soft, got %v", got)
	}

	seq, _ = NewSequence(children, Soft, Hard)
	if got := seq.ResolvedBreaks(); len(got) != 2 || got[0] != Soft || got[1] != Hard {
		t.Errorf("per-join breaks should resolve unchanged, got %v", got)
	}
}

func TestSequenceHasWrapCandidate(t *testing.T) {
	children := []Node{NewTerminal("a"), NewTerminal("b")}

	seq, _ := NewSequence(children)
	if seq.HasWrapCandidate() {
		t.Error("all-NoBreak sequence should report no wrap candidate")
	}

	seq, _ = NewSequence(children, Soft)
	if !seq.HasWrapCandidate() {
		t.Error("a Soft join should report a wrap candidate")
	}
}

func TestNewChoiceValidation(t *testing.T) {
	if _, err := NewChoice(nil, 0); err == nil {
		t.Error("empty children should be rejected")
	}
	children := []Node{NewTerminal("a"), NewTerminal("b")}
	if _, err := NewChoice(children, 2); err == nil {
		t.Error("out-of-range default should be rejected")
	}
	if _, err := NewChoice(children, -1); err == nil {
		t.Error("negative default should be rejected")
	}
	if _, err := NewChoice(children, 1); err != nil {
		t.Errorf("in-range default should be accepted: %v", err)
	}
}

func TestOptionalLowerShapes(t *testing.T) {
	child := NewTerminal("x")

	tests := []struct {
		name         string
		opts         []OptionalOption
		wantDefault  int
		wantMainIdx  int
	}{
		{"default: main on line, bypass top", nil, 1, 1},
		{"skip=true, top: element is bypass, renders below", []OptionalOption{WithSkip(true)}, 0, 1},
		{"skip=false, bottom: bypass below", []OptionalOption{WithSkipBottom(true)}, 0, 0},
		{"skip=true, bottom: element is bypass, renders above", []OptionalOption{WithSkip(true), WithSkipBottom(true)}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := NewOptional(child, tt.opts...)
			choice := opt.lower()
			if choice.Default != tt.wantDefault {
				t.Errorf("Default = %d, want %d", choice.Default, tt.wantDefault)
			}
			if choice.Children[tt.wantMainIdx] != Node(child) {
				t.Errorf("expected child at index %d to be the original element", tt.wantMainIdx)
			}
		})
	}
}

func TestZeroOrMoreLower(t *testing.T) {
	body := NewTerminal("x")
	z := NewZeroOrMore(body, WithLoopSkip(false))
	opt := z.lower()

	oom, ok := opt.Child.(*OneOrMore)
	if !ok {
		t.Fatalf("ZeroOrMore should lower to Optional(OneOrMore(...)), got %T", opt.Child)
	}
	if oom.Body != Node(body) {
		t.Error("lowered OneOrMore should wrap the original body")
	}
}

func TestLowerIdempotent(t *testing.T) {
	tree := NewOptional(NewZeroOrMore(NewTerminal("a")))

	once := Lower(tree)
	twice := Lower(once)

	if !sameShape(once, twice) {
		t.Error("Lower(Lower(n)) should have the same shape as Lower(n)")
	}
}

func TestLowerRemovesOptionalAndZeroOrMore(t *testing.T) {
	tree := NewSequence1(t, NewOptional(NewTerminal("a")), NewZeroOrMore(NewTerminal("b")))

	lowered := Lower(tree)

	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Optional:
			t.Fatalf("Lower left an Optional node in the tree")
		case *ZeroOrMore:
			t.Fatalf("Lower left a ZeroOrMore node in the tree")
		case *Sequence:
			for _, c := range v.Children {
				walk(c)
			}
		case *Choice:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(lowered)
}

// NewSequence1 is a small test helper building a two-child sequence,
// failing the test instead of returning an error.
func NewSequence1(t *testing.T, a, b Node) Node {
	t.Helper()
	seq, err := NewSequence([]Node{a, b})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return seq
}

// sameShape compares two trees structurally by type, ignoring pointer
// identity — enough to check Lower's idempotence without a full deep-equal.
func sameShape(a, b Node) bool {
	switch av := a.(type) {
	case *Choice:
		bv, ok := b.(*Choice)
		if !ok || av.Default != bv.Default || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !sameShape(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	case *OneOrMore:
		bv, ok := b.(*OneOrMore)
		return ok && sameShape(av.Body, bv.Body) && sameShape(av.Repeat, bv.Repeat)
	case *Terminal:
		bv, ok := b.(*Terminal)
		return ok && av.Text == bv.Text
	case Skip:
		_, ok := b.(Skip)
		return ok
	default:
		return true
	}
}
