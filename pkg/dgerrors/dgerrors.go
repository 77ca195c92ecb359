// Package dgerrors defines the structured error types the layout engine
// reports, mirroring the error surface in spec.md §7: a LoadingError for
// malformed input, an EmbedderError when a caller-supplied callback
// fails, and a panic-based invariant violation for engine bugs.
//
// The shape (Code/Message/Cause, with NewLoading/WrapLoading/
// WrapEmbedder/Is/UserMessage helpers) is modeled on the teacher repository's pkg/errors; Path is
// new here, grounded on the breadcrumb-trail pattern in
// _examples/jacoelho-xsd/errors, which attaches Path/Line/Column to its
// own Validation error.
package dgerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeLoading marks the generic "input tree is malformed" error.
	CodeLoading Code = "LOADING_ERROR"
	// CodeUnknownTag marks a data-literal map with no recognized variant key.
	CodeUnknownTag Code = "LOADING_UNKNOWN_TAG"
	// CodeWrongType marks a field whose value has the wrong Go/JSON type.
	CodeWrongType Code = "LOADING_WRONG_TYPE"
	// CodeOutOfRange marks an out-of-range index, such as Choice.Default.
	CodeOutOfRange Code = "LOADING_OUT_OF_RANGE"
	// CodeLengthMismatch marks a breaks vector whose length doesn't match
	// its sequence.
	CodeLengthMismatch Code = "LOADING_LENGTH_MISMATCH"
	// CodeMissingField marks an empty required field.
	CodeMissingField Code = "LOADING_MISSING_FIELD"
	// CodeInconsistentFlags marks a flag the data-literal loader refuses
	// on the node it appears on: a repeat_top key on loop input.
	CodeInconsistentFlags Code = "LOADING_INCONSISTENT_FLAGS"

	// CodeEmbedder marks a failure raised by an embedder-supplied
	// TextMeasure or HrefResolver callback.
	CodeEmbedder Code = "EMBEDDER_ERROR"
)

// LoadingError reports that an input tree could not be turned into a
// valid [github.com/flowshape/syntaxdiagrams/pkg/diagram.Node]. It is
// the only error kind the loader returns (the node constructors in
// package diagram return plain errors, which the loader wraps in a
// LoadingError); rendering
// either completes or fails synchronously with no partial output.
type LoadingError struct {
	Code    Code
	Message string
	Path    Path
	Cause   error
}

// Path is a breadcrumb trail of map keys and list indices locating the
// offending node inside the original input.
type Path []any

func (p Path) String() string {
	var b strings.Builder
	for i, step := range p {
		switch v := step.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", v)
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}

func (e *LoadingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause, for errors.Is/errors.As.
func (e *LoadingError) Unwrap() error { return e.Cause }

// NewLoading creates a LoadingError with the given code, path and
// formatted message.
func NewLoading(code Code, path Path, format string, args ...any) *LoadingError {
	return &LoadingError{Code: code, Message: fmt.Sprintf(format, args...), Path: path}
}

// WrapLoading wraps an existing error as a LoadingError.
func WrapLoading(code Code, path Path, cause error, format string, args ...any) *LoadingError {
	return &LoadingError{Code: code, Message: fmt.Sprintf(format, args...), Path: path, Cause: cause}
}

// EmbedderError wraps an error returned by a caller-supplied
// TextMeasure or HrefResolver callback. Per spec.md §7 these callbacks
// must not fail; when one returns an error, rendering aborts with this
// error instead of propagating the raw callback error.
type EmbedderError struct {
	Message string
	Cause   error
}

func (e *EmbedderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", CodeEmbedder, e.Message, e.Cause)
}

func (e *EmbedderError) Unwrap() error { return e.Cause }

// WrapEmbedder builds an EmbedderError.
func WrapEmbedder(cause error, format string, args ...any) *EmbedderError {
	return &EmbedderError{Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a LoadingError with the given code.
func Is(err error, code Code) bool {
	var e *LoadingError
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// UserMessage returns a one-line, human-readable message suitable for
// CLI output: the message without the code prefix for LoadingError and
// EmbedderError, or err.Error() for anything else.
func UserMessage(err error) string {
	var le *LoadingError
	if errors.As(err, &le) {
		if len(le.Path) > 0 {
			return fmt.Sprintf("%s at %s", le.Message, le.Path)
		}
		return le.Message
	}
	var ee *EmbedderError
	if errors.As(err, &ee) {
		return fmt.Sprintf("%s: %v", ee.Message, ee.Cause)
	}
	return err.Error()
}

// Invariant panics to report a violated internal invariant — a bug in
// the engine, never something callers should recover from with a
// fallback. name should identify the invariant, e.g. "choice: default
// index out of range after wrap".
func Invariant(name string) {
	panic(fmt.Sprintf("syntaxdiagrams: internal invariant violated: %s", name))
}
