package errors

import (
	"fmt"
	"net/http"

	"portal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Business error codes shared with the upstream API.
const (
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeEmailNotVerified        = "EMAIL_NOT_VERIFIED"
	CodeNetworkError            = "NETWORK_ERROR"
	CodeRefreshTokenMissing     = "REFRESH_TOKEN_MISSING"
	CodeSessionExpired          = "SESSION_EXPIRED"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeEntityStatusUnavailable = "ENTITY_STATUS_UNAVAILABLE"
	CodeAccessRestricted        = "ACCESS_RESTRICTED"
	CodeResendCooldown          = "RESEND_COOLDOWN"
	CodeResendNotAllowed        = "RESEND_NOT_ALLOWED"
	CodeInternalError           = "INTERNAL_ERROR"
)

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Email/username and password are required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"Login failed. Please check your credentials.",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		CodeEmailNotVerified,
		"Please verify your email address before signing in",
		"",
	)

	ErrNetworkFailure = NewBaseError(
		http.StatusBadGateway,
		CodeNetworkError,
		"Network error. Please check your connection and try again.",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		CodeRefreshTokenMissing,
		"No refresh token available",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		CodeSessionExpired,
		"Your session has expired. Please sign in again.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Authentication required",
		"",
	)

	ErrEntityStatusUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		CodeEntityStatusUnavailable,
		"Unable to verify entity status",
		"",
	)

	ErrAccessRestricted = NewBaseError(
		http.StatusForbidden,
		CodeAccessRestricted,
		"Access to this area is restricted",
		"",
	)

	ErrResendCooldown = NewBaseError(
		http.StatusTooManyRequests,
		CodeResendCooldown,
		"Please wait before requesting another verification email",
		"",
	)

	ErrResendNotAllowed = NewBaseError(
		http.StatusForbidden,
		CodeResendNotAllowed,
		"Verification email cannot be resent for this account",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal error",
		"",
	)
)

// StatusOf returns the HTTP status the catalogue assigns to code, or 0 when the code is unknown.
func StatusOf(code string) int {
	for _, e := range []*BaseError{
		ErrValidationFailed, ErrInvalidCredentials, ErrEmailNotVerified, ErrNetworkFailure,
		ErrRefreshTokenMissing, ErrSessionExpired, ErrUnauthorized, ErrEntityStatusUnavailable,
		ErrAccessRestricted, ErrResendCooldown, ErrResendNotAllowed, ErrInternalError,
	} {
		if e.errorCode == code {
			return e.httpCode
		}
	}

	return 0
}

// UpstreamError is a non-2xx answer from the upstream API, implementing the AppError interface
type UpstreamError struct {
	Status  int
	Code    string
	Msg     string
	Payload map[string]any
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream responded %d (%s): %s", e.Status, e.Code, e.Msg)
	}

	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Msg)
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	if e.Code != "" {
		return e.Code
	}

	return http.StatusText(e.Status)
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.Msg
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return ""
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	upstream, ok := errors.AsType[*UpstreamError](err)

	return ok && upstream.Status == http.StatusUnauthorized
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetworkFailure)
}
