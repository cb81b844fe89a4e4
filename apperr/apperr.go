// Package apperr defines the error taxonomy every operation resolves to.
// Callers never see raw storage errors; handlers translate everything into
// exactly one of these kinds before it reaches the response writer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
	// KindNotAuthorizedOrNotFound is deliberately ambiguous: a scoped row
	// update that matched nothing must not reveal whether the row exists
	// under another tenant.
	KindNotAuthorizedOrNotFound
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause is logged for operators;
// the user-visible message stays generic.
func Internal(cause error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

// HTTPStatus maps the taxonomy onto the response status codes.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden, KindNotAuthorizedOrNotFound:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// From coerces any error into a taxonomy member, defaulting to internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err, "Server error")
}
