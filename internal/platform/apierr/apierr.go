package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeUnauthorized   = "unauthorized"
	CodeInvalidRequest = "invalid_request"
	CodeInternal       = "internal_error"
	CodeAuthProvider   = "auth_provider_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Internal(err error) *Error { return New(http.StatusInternalServerError, CodeInternal, err) }

func InvalidRequest(err error) *Error {
	return New(http.StatusUnprocessableEntity, CodeInvalidRequest, err)
}

// From extracts an *Error from err, treating anything else as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return Internal(err)
}
