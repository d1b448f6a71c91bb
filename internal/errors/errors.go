package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates invalid input data; no network call was made.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeTransport indicates a network-level failure (timeout, refused, DNS).
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeThrottled indicates the gateway throttled the request and the
	// retry budget was exhausted.
	ErrCodeThrottled ErrorCode = "throttled"
	// ErrCodeSessionExpired indicates the gateway invalidated the connection id
	// and recovery failed.
	ErrCodeSessionExpired ErrorCode = "session_expired"
	// ErrCodeGateway indicates a domain error code returned by the gateway.
	ErrCodeGateway ErrorCode = "gateway"
	// ErrCodeLockedOut indicates the login identity is locked out locally.
	ErrCodeLockedOut ErrorCode = "locked_out"
	// ErrCodeAuth indicates the login handshake itself was rejected.
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// GatewayCode is the raw response code for gateway and throttle errors (optional)
	GatewayCode string
	// RetryAfter is how long the caller must wait for lockout errors (optional)
	RetryAfter time.Duration
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

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Transport wraps a network-level failure.
func Transport(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
		Cause:   err,
	}
}

// Throttled creates an error for an exhausted throttle-retry budget.
func Throttled(message string) *AppError {
	return &AppError{
		Code:        ErrCodeThrottled,
		Message:     message,
		GatewayCode: "401",
	}
}

// SessionExpired creates an error for an unrecoverable session invalidation.
func SessionExpired(message string) *AppError {
	return &AppError{
		Code:        ErrCodeSessionExpired,
		Message:     message,
		GatewayCode: "402",
	}
}

// Gateway creates an error for a domain error code returned by the gateway.
func Gateway(code, message string) *AppError {
	return &AppError{
		Code:        ErrCodeGateway,
		Message:     message,
		GatewayCode: code,
	}
}

// LockedOut creates an error for a locally rejected login attempt.
func LockedOut(message string, retryAfter time.Duration) *AppError {
	return &AppError{
		Code:       ErrCodeLockedOut,
		Message:    message,
		RetryAfter: retryAfter,
	}
}

// Auth creates an error for a rejected login handshake.
func Auth(message string) *AppError {
	return &AppError{
		Code:    ErrCodeAuth,
		Message: message,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
	}
}

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
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// IsThrottled checks if an error is a Throttled error.
func IsThrottled(err error) bool {
	return isCode(err, ErrCodeThrottled)
}

// IsSessionExpired checks if an error is a SessionExpired error.
func IsSessionExpired(err error) bool {
	return isCode(err, ErrCodeSessionExpired)
}

// IsGateway checks if an error is a Gateway domain error.
func IsGateway(err error) bool {
	return isCode(err, ErrCodeGateway)
}

// IsLockedOut checks if an error is a LockedOut error.
func IsLockedOut(err error) bool {
	return isCode(err, ErrCodeLockedOut)
}

// IsAuth checks if an error is an Auth error.
func IsAuth(err error) bool {
	return isCode(err, ErrCodeAuth)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetGatewayCode returns the raw gateway response code from an error, or empty
// string if the error did not originate from a gateway response.
func GetGatewayCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.GatewayCode
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
