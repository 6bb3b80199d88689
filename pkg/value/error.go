// SPDX-License-Identifier: MPL-2.0

package value

import "fmt"

// Error is the payload of an error value. It implements the error
// interface so that consumers which do want to surface it can hand it
// straight to their error path, but inside a pipeline it is inert data.
type Error struct {
	// Message describes what went wrong.
	Message string
	// Span points at the input that produced the failure.
	Span Span
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unsupported returns an error value describing an operation applied to a
// kind it does not support.
func Unsupported(operation string, got Kind, span Span) Value {
	return NewError(&Error{
		Message: fmt.Sprintf("%s: unsupported input type %s", operation, got),
		Span:    span,
	})
}

// CantConvert returns an error value describing a failed conversion.
func CantConvert(target, reason string, span Span) Value {
	return NewError(&Error{
		Message: fmt.Sprintf("cannot convert to %s: %s", target, reason),
		Span:    span,
	})
}
