// Package errs holds the error kinds shared by registers, observers and
// controllers. Callers match kinds with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrNotFound          = errors.New("not found")
	ErrNullArgument      = errors.New("null argument")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// Error carries a human message together with its kind. Error() returns only
// the message so views can show it verbatim.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// New returns an error of the given kind.
func New(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error { return New(ErrNotFound, format, args...) }

func Duplicate(format string, args ...any) error { return New(ErrDuplicateKey, format, args...) }

func Null(what string) error { return New(ErrNullArgument, "%s cannot be null", what) }

func Unsupported(format string, args ...any) error {
	return New(ErrUnsupportedAction, format, args...)
}

func Invalid(format string, args ...any) error { return New(ErrInvalidArgument, format, args...) }
