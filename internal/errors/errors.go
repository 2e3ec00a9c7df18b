// Package errors provides domain-specific error types for rangefetch.
//
// This package defines structured errors with error codes, making it easier
// to handle and test the different ways a provider fetch can fail.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration error (unknown provider, bad config file).
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeNetwork indicates a fetch failure (connection error, timeout, bad HTTP status).
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"

	// ErrCodeDecode indicates a structurally malformed document (e.g. invalid JSON).
	ErrCodeDecode ErrorCode = "DECODE_ERROR"

	// ErrCodeEmptyResult indicates a parse that produced zero usable entries.
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"

	// ErrCodeWrite indicates a filesystem failure while writing output.
	ErrCodeWrite ErrorCode = "WRITE_ERROR"

	// ErrCodeValidation indicates a configuration validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is a domain error with the given code.
func HasCode(err error, code ErrorCode) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewNetworkError creates a new fetch/network error.
func NewNetworkError(message string, cause error) *Error {
	return Wrap(ErrCodeNetwork, message, cause)
}

// NewDecodeError creates a new document decode error.
func NewDecodeError(message string, cause error) *Error {
	return Wrap(ErrCodeDecode, message, cause)
}

// NewEmptyResultError creates a new empty-result error.
func NewEmptyResultError(message string) *Error {
	return New(ErrCodeEmptyResult, message)
}

// NewWriteError creates a new output write error.
func NewWriteError(message string, cause error) *Error {
	return Wrap(ErrCodeWrite, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
