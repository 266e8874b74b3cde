// Package apperrors provides the structured error type shared by the task
// sources and the HTTP layer.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the caller.
type Kind string

const (
	// KindInternal is any failure that was not anticipated.
	KindInternal Kind = "INTERNAL"
	// KindDataUnavailable means the task source is missing or malformed.
	KindDataUnavailable Kind = "DATA_UNAVAILABLE"
	// KindNotFound means no route matched the request.
	KindNotFound Kind = "NOT_FOUND"
)

// HTTPStatus maps a kind to its response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindDataUnavailable:
		return http.StatusInternalServerError
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error type.
type Error struct {
	Kind    Kind   // Machine-readable classification
	Message string // Internal message (for logs)
	Cause   error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a domain error with a kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinels usable with errors.Is.
var (
	ErrDataUnavailable = New(KindDataUnavailable, "data unavailable")
	ErrNotFound        = New(KindNotFound, "not found")
)

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
