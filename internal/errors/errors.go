package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of client-side error.
type ErrorCode string

const (
	// ErrCodeValidation indicates input rejected before any network or storage access.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeConflict indicates the record already exists (e.g., duplicate account).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeNotFound indicates an unknown account or resource.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeUnauthorized indicates wrong credentials or an expired/invalid token.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeTransient indicates a retryable server-side failure that exhausted its retries.
	ErrCodeTransient ErrorCode = "transient"
	// ErrCodeTransport indicates the request never produced a response (connectivity).
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeHTTP indicates any other non-2xx response.
	ErrCodeHTTP ErrorCode = "http"
	// ErrCodeInternal indicates a local failure (encoding, storage).
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable, displayable message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the input field that failed validation (optional)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError { return newError(ErrCodeValidation, message) }

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return newError(ErrCodeValidation, fmt.Sprintf(format, args...))
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError { return newError(ErrCodeConflict, message) }

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError { return newError(ErrCodeNotFound, message) }

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError { return newError(ErrCodeUnauthorized, message) }

// Unauthorizedf creates a new Unauthorized error with formatted message.
func Unauthorizedf(format string, args ...any) *AppError {
	return newError(ErrCodeUnauthorized, fmt.Sprintf(format, args...))
}

// Internal creates a new Internal error.
func Internal(message string) *AppError { return newError(ErrCodeInternal, message) }

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool { return isCode(err, ErrCodeConflict) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool { return isCode(err, ErrCodeUnauthorized) }

// IsTransient checks if an error is a Transient error.
func IsTransient(err error) bool { return isCode(err, ErrCodeTransient) }

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool { return isCode(err, ErrCodeTransport) }

// IsRemote reports whether err came from talking to the backend (as opposed to local validation).
func IsRemote(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnauthorized, ErrCodeTransient, ErrCodeTransport, ErrCodeHTTP:
		return true
	default:
		return false
	}
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// Message returns the displayable message of err: the AppError message when present,
// otherwise err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
