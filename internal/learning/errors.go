package learning

import (
	"errors"
	"fmt"
)

// Error kinds returned by the scheduler. Anything else is an internal failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Error carries a caller-facing message naming the offending ids and wraps its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError returns an error of the given kind with a formatted message.
func NewError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...interface{}) error {
	return NewError(ErrInvalidInput, format, args...)
}

func notFound(format string, args ...interface{}) error {
	return NewError(ErrNotFound, format, args...)
}

func invalidState(format string, args ...interface{}) error {
	return NewError(ErrInvalidState, format, args...)
}
