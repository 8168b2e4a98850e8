package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrValidation ErrorCode = iota + 1000
	ErrUnauthenticated
	ErrUnauthorized
	ErrNotFound
	ErrConflict
	ErrInternal
)

// Validation rejects malformed or incomplete input before any write happens.
func Validation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

// Unauthenticated means no credential was supplied at all.
func Unauthenticated(message string) *AppError {
	return &AppError{Code: ErrUnauthenticated, Message: message}
}

// Unauthorized covers unknown, revoked and under-privileged credentials.
// Callers get the same message for the first two so they cannot tell which it was.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrUnauthorized, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Code: ErrConflict, Message: message, Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal server error", Err: err}
}

// CodeOf extracts the error code from err's chain, defaulting to ErrInternal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// MessageOf returns the user-facing message for err. Internal errors never
// leak their cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
