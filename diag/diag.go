// Package diag holds the error vocabulary shared by the front-end and the evaluator.
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

// Error kinds. The parser only ever produces KindSyntax and KindParse.
const (
	KindSyntax Kind = iota + 1
	KindValue
	KindParse
	KindRuntime
	KindZeroDivision
)

var kindStrings = map[Kind]string{
	KindSyntax:       "SyntaxError",
	KindValue:        "ValueError",
	KindParse:        "ParseError",
	KindRuntime:      "RuntimeError",
	KindZeroDivision: "ZeroDivisionError",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span locates a token in the source: 1-based line, absolute byte offsets [Start, End).
type Span struct {
	Line  int
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Start, s.End)
}

// Error is a diagnostic with its location.
type Error struct {
	Kind Kind
	Msg  string
	Span Span
}

func (e *Error) Error() string {
	if e.Kind == KindZeroDivision && e.Msg == "" {
		return e.Kind.String() + ": division by zero"
	}
	return e.Kind.String() + ": " + e.Msg
}

// New creates a new diagnostic.
func New(kind Kind, span Span, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Span: span}
}

// Syntaxf reports a token mismatch.
func Syntaxf(span Span, format string, args ...any) *Error {
	return New(KindSyntax, span, fmt.Sprintf(format, args...))
}

// Parsef reports a structural grammar violation.
func Parsef(span Span, format string, args ...any) *Error {
	return New(KindParse, span, fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}
