package load

import (
	"testing"

	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

func TestLoadScalars(t *testing.T) {
	n, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if _, ok := n.(diagram.Skip); !ok {
		t.Errorf("Load(nil) = %T, want diagram.Skip", n)
	}

	n, err = Load("hello")
	if err != nil {
		t.Fatalf("Load(string): %v", err)
	}
	term, ok := n.(*diagram.Terminal)
	if !ok || term.Text != "hello" {
		t.Errorf("Load(string) = %#v, want Terminal{Text: hello}", n)
	}
}

func TestLoadSequenceSugar(t *testing.T) {
	n, err := Load([]any{"a", "b", nil})
	if err != nil {
		t.Fatalf("Load(list): %v", err)
	}
	seq, ok := n.(*diagram.Sequence)
	if !ok || len(seq.Children) != 3 {
		t.Fatalf("Load(list) = %#v, want a 3-child Sequence", n)
	}
	if _, ok := seq.Children[2].(diagram.Skip); !ok {
		t.Errorf("nil list item should load as Skip, got %T", seq.Children[2])
	}
}

func TestLoadTaggedLeaves(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"terminal", "terminal"},
		{"non_terminal", "non_terminal"},
		{"comment", "comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Load(map[string]any{tt.tag: "x"})
			if err != nil {
				t.Fatalf("Load(%s): %v", tt.tag, err)
			}
			switch tt.tag {
			case "terminal":
				if _, ok := n.(*diagram.Terminal); !ok {
					t.Errorf("got %T", n)
				}
			case "non_terminal":
				if _, ok := n.(*diagram.NonTerminal); !ok {
					t.Errorf("got %T", n)
				}
			case "comment":
				if _, ok := n.(*diagram.Comment); !ok {
					t.Errorf("got %T", n)
				}
			}
		})
	}
}

func TestLoadLeafWithFields(t *testing.T) {
	n, err := Load(map[string]any{
		"terminal": map[string]any{
			"text": "go", "href": "https://go.dev", "css_class": "kw",
		},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	term := n.(*diagram.Terminal)
	if term.Text != "go" || term.Href != "https://go.dev" || term.CSSClass != "kw" {
		t.Errorf("term = %#v", term)
	}
}

func TestLoadMultipleTagsRejected(t *testing.T) {
	_, err := Load(map[string]any{"terminal": "a", "comment": "b"})
	if !dgerrors.Is(err, dgerrors.CodeUnknownTag) {
		t.Errorf("expected CodeUnknownTag, got %v", err)
	}
}

func TestLoadNoTagRejected(t *testing.T) {
	_, err := Load(map[string]any{"bogus": "a"})
	if !dgerrors.Is(err, dgerrors.CodeUnknownTag) {
		t.Errorf("expected CodeUnknownTag, got %v", err)
	}
}

func TestLoadChoice(t *testing.T) {
	n, err := Load(map[string]any{
		"choice": map[string]any{
			"children": []any{"a", "b", "c"},
			"default":  1,
		},
	})
	if err != nil {
		t.Fatalf("Load(choice): %v", err)
	}
	choice := n.(*diagram.Choice)
	if choice.Default != 1 || len(choice.Children) != 3 {
		t.Errorf("choice = %#v", choice)
	}
}

func TestLoadChoiceMissingDefault(t *testing.T) {
	_, err := Load(map[string]any{
		"choice": map[string]any{"children": []any{"a"}},
	})
	if !dgerrors.Is(err, dgerrors.CodeMissingField) {
		t.Errorf("expected CodeMissingField, got %v", err)
	}
}

func TestLoadChoiceInvalidDefault(t *testing.T) {
	_, err := Load(map[string]any{
		"choice": map[string]any{"children": []any{"a"}, "default": 5},
	})
	if !dgerrors.Is(err, dgerrors.CodeOutOfRange) {
		t.Errorf("expected CodeOutOfRange, got %v", err)
	}
}

func TestLoadOptional(t *testing.T) {
	n, err := Load(map[string]any{
		"optional": map[string]any{"child": "x", "skip": true},
	})
	if err != nil {
		t.Fatalf("Load(optional): %v", err)
	}
	opt := n.(*diagram.Optional)
	if !opt.Skip {
		t.Error("skip should be true")
	}
}

func TestLoadOneOrMore(t *testing.T) {
	n, err := Load(map[string]any{
		"one_or_more": map[string]any{"body": "x", "repeat": ","},
	})
	if err != nil {
		t.Fatalf("Load(one_or_more): %v", err)
	}
	oom := n.(*diagram.OneOrMore)
	repeat, ok := oom.Repeat.(*diagram.Terminal)
	if !ok || repeat.Text != "," {
		t.Errorf("repeat = %#v", oom.Repeat)
	}
}

func TestLoadOneOrMoreRejectsRepeatTop(t *testing.T) {
	_, err := Load(map[string]any{
		"one_or_more": map[string]any{"body": "x", "repeat_top": true},
	})
	if !dgerrors.Is(err, dgerrors.CodeInconsistentFlags) {
		t.Errorf("expected CodeInconsistentFlags, got %v", err)
	}
}

func TestLoadZeroOrMore(t *testing.T) {
	n, err := Load(map[string]any{
		"zero_or_more": map[string]any{"body": "x", "skip_bottom": true},
	})
	if err != nil {
		t.Fatalf("Load(zero_or_more): %v", err)
	}
	if _, ok := n.(*diagram.ZeroOrMore); !ok {
		t.Errorf("got %T", n)
	}
}

func TestLoadBarrier(t *testing.T) {
	n, err := Load(map[string]any{"barrier": "x"})
	if err != nil {
		t.Fatalf("Load(barrier): %v", err)
	}
	b := n.(*diagram.Barrier)
	if _, ok := b.Child.(*diagram.Terminal); !ok {
		t.Errorf("child = %#v", b.Child)
	}
}

func TestLoadGroup(t *testing.T) {
	n, err := Load(map[string]any{
		"group": map[string]any{"child": "x", "text": "caption"},
	})
	if err != nil {
		t.Fatalf("Load(group): %v", err)
	}
	g := n.(*diagram.Group)
	if g.Text != "caption" {
		t.Errorf("text = %q", g.Text)
	}
}

func TestLoadGroupMissingText(t *testing.T) {
	_, err := Load(map[string]any{
		"group": map[string]any{"child": "x"},
	})
	if !dgerrors.Is(err, dgerrors.CodeMissingField) {
		t.Errorf("expected CodeMissingField, got %v", err)
	}
}

func TestLoadStack(t *testing.T) {
	n, err := Load(map[string]any{"stack": []any{"a", "b"}})
	if err != nil {
		t.Fatalf("Load(stack): %v", err)
	}
	stack := n.(*diagram.Stack)
	if len(stack.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(stack.Rows))
	}
}

func TestLoadSequenceTagWithBreaks(t *testing.T) {
	n, err := Load(map[string]any{
		"sequence": map[string]any{
			"children": []any{"a", "b", "c"},
			"breaks":   []any{"soft", "hard"},
		},
	})
	if err != nil {
		t.Fatalf("Load(sequence): %v", err)
	}
	seq := n.(*diagram.Sequence)
	resolved := seq.ResolvedBreaks()
	if resolved[0] != diagram.Soft || resolved[1] != diagram.Hard {
		t.Errorf("resolved breaks = %v", resolved)
	}
}

func TestLoadSequenceTagUnknownBreak(t *testing.T) {
	_, err := Load(map[string]any{
		"sequence": map[string]any{
			"children": []any{"a", "b"},
			"breaks":   []any{"bogus"},
		},
	})
	if !dgerrors.Is(err, dgerrors.CodeWrongType) {
		t.Errorf("expected CodeWrongType, got %v", err)
	}
}

func TestLoadRejectsUnsupportedType(t *testing.T) {
	_, err := Load(42)
	if !dgerrors.Is(err, dgerrors.CodeWrongType) {
		t.Errorf("expected CodeWrongType, got %v", err)
	}
}

func TestLoadErrorReportsPath(t *testing.T) {
	_, err := Load([]any{"a", map[string]any{"bogus": true}})
	le, ok := err.(*dgerrors.LoadingError)
	if !ok {
		t.Fatalf("expected *dgerrors.LoadingError, got %T", err)
	}
	if got := le.Path.String(); got != "[1]" {
		t.Errorf("Path = %q, want [1]", got)
	}
}
