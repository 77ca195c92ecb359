package dgerrors

import (
	"errors"
	"testing"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{nil, ""},
		{Path{"choice"}, "choice"},
		{Path{"choice", 0}, "choice[0]"},
		{Path{"sequence", "children", 2, "text"}, "sequence.children[2].text"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("Path(%v).String() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewLoadingError(t *testing.T) {
	err := NewLoading(CodeWrongType, Path{"child"}, "expected %s, got %s", "string", "int")

	if err.Code != CodeWrongType {
		t.Errorf("Code = %v, want %v", err.Code, CodeWrongType)
	}
	if err.Message != "expected string, got int" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "LOADING_WRONG_TYPE: expected string, got int at child"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapLoadingUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapLoading(CodeLengthMismatch, nil, cause, "invalid sequence")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through Unwrap to the cause")
	}
}

func TestIs(t *testing.T) {
	err := NewLoading(CodeUnknownTag, nil, "no tag")

	if !Is(err, CodeUnknownTag) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, CodeWrongType) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), CodeUnknownTag) {
		t.Error("Is should return false for a non-LoadingError")
	}
}

func TestUserMessage(t *testing.T) {
	loading := NewLoading(CodeMissingField, Path{"group", "text"}, "group requires text")
	if got := UserMessage(loading); got != "group requires text at group.text" {
		t.Errorf("UserMessage(loading) = %q", got)
	}

	loadingNoPath := NewLoading(CodeMissingField, nil, "group requires text")
	if got := UserMessage(loadingNoPath); got != "group requires text" {
		t.Errorf("UserMessage(loadingNoPath) = %q", got)
	}

	embedder := WrapEmbedder(errors.New("boom"), "text measure failed for %s", "terminal")
	if got := UserMessage(embedder); got != "text measure failed for terminal: boom" {
		t.Errorf("UserMessage(embedder) = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Invariant should panic")
		}
		msg, ok := r.(string)
		if !ok || msg != "syntaxdiagrams: internal invariant violated: test invariant" {
			t.Errorf("panic value = %v", r)
		}
	}()
	Invariant("test invariant")
}
