package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindUpstream      Kind = "upstream"
	KindNotFound      Kind = "not_found"
	KindForbidden     Kind = "forbidden"
	KindTooLarge      Kind = "too_large"
)

// Error is an error carrying the HTTP status the central error handler should answer with.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func NewConfiguration(message string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: message, cause: cause}
}

// NewUpstream keeps the provider status when there is one, otherwise answers 502.
func NewUpstream(status int, message string, cause error) *Error {
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return &Error{Kind: KindUpstream, Status: status, Message: message, cause: cause}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

func NewTooLarge(message string) *Error {
	return &Error{Kind: KindTooLarge, Status: http.StatusRequestEntityTooLarge, Message: message}
}

// From returns the first *Error found in the chain of err.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	appErr, ok := From(err)
	return ok && appErr.Kind == kind
}
