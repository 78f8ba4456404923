// Package errors complements the standard errors package with an error
// type that wraps a cause error rather than formatting it into text.
// It keeps sentinel-style comparisons working through errors.Is while
// letting call sites attach a situation-specific message.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New builds an Error carrying msg and no cause.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is an error with an optional wrapped cause.
type Error struct {
	msg   string
	cause error
}

// Error yields the message of this error only; causes are reached
// through Unwrap.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap yields the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Wrap attaches a cause to this error and returns it for chaining.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

// Is reports whether this error or its direct cause is target.
// Deeper chains are walked by the standard library through Unwrap.
func (e *Error) Is(target error) bool {
	return e == target || e.cause == target
}

// Is reports whether any error in err's chain matches target
// (shortcut to the standard library).
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

// As finds the first error in err's chain matching target's type
// (shortcut to the standard library).
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}
