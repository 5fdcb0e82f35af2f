package pkg

import "fmt"

// AppError is the transport-facing error returned by handlers.
//
// Code is a stable machine-readable identifier, Message is safe to show to end users
// and Err (optional) keeps the underlying cause for logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches a human-readable reason that is returned to the caller.
func (e *AppError) WithDetails(err error) *AppError {
	if e == nil || err == nil {
		return e
	}
	cp := *e
	cp.Err = err
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the error body. Internal errors never leak their cause.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil && e.HTTPStatus < 500 {
		out.Details = e.Err.Error()
	}
	return out
}
