// Package apperr defines the error kinds surfaced by the API and their HTTP
// status mapping.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
)

// Error carries a caller-safe message. Cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Status returns the HTTP status for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict, KindInvalidCredentials:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// InvalidCredentials is a failed password login. It answers 400, not 401.
func InvalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: msg}
}

func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }
func Conflict(msg string) *Error  { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error  { return &Error{Kind: KindNotFound, Message: msg} }

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Cause: cause}
}

// KindOf reports the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
