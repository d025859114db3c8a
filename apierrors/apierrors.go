package apierrors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeNotFound           Code = "NOT_FOUND"
	CodeUpstreamField      Code = "UPSTREAM_FIELD_ERROR"
	CodeUpstreamStructural Code = "UPSTREAM_STRUCTURAL_ERROR"
	CodeTransport          Code = "TRANSPORT_ERROR"
)

var statusByCode = map[Code]int{
	CodeValidation:         http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeUpstreamField:      http.StatusBadRequest,
	CodeUpstreamStructural: http.StatusInternalServerError,
	CodeTransport:          http.StatusInternalServerError,
}

// HTTPStatus maps an error code to the response status. Unknown codes
// fall back to 500.
func HTTPStatus(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeTransport
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts a typed API error from err's chain, or nil.
func As(err error) *Error {
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
