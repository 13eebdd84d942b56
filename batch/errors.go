package batch

import (
	"errors"
	"fmt"
)

// Kind classifies batch failures.
type Kind int

const (
	// KindInvocation covers problems with the request itself, such as a
	// missing or unreadable directory. Nothing is processed.
	KindInvocation Kind = iota + 1
	// KindDecode covers a single file that could not be decoded as an
	// image. The batch continues without it.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindInvocation:
		return "invocation"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is a batch failure with a kind, the path it concerns and its cause.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Path != "" {
		s += " " + e.Path
	}
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

func wrap(err error, kind Kind, path, msg string) *Error {
	return &Error{Kind: kind, Path: path, Message: msg, Cause: err}
}

// IsKind reports whether any error in err's chain is a batch Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
