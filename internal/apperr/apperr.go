// Package apperr defines the error type shown to users of rehearse
package apperr

import "fmt"

// Error is a user-facing error. Message may contain fmt verbs that are filled
// in with Fmt.
type Error struct {
	Cause   error
	origin  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same error value, so
// formatted and wrapped copies still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.root() == e.root()
}

// Fmt returns a copy of the error with its message formatted.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		origin:  e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		origin:  e.root(),
	}
}

// root is the sentinel the error was derived from.
func (e *Error) root() *Error {
	if e.origin != nil {
		return e.origin
	}

	return e
}
