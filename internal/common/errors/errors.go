package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an application error for HTTP mapping and client
// messaging.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"

	// Mint eligibility
	ErrCodeCourseNotMapped  ErrorCode = "COURSE_NOT_MAPPED"
	ErrCodeCourseIncomplete ErrorCode = "COURSE_INCOMPLETE"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeAlreadyMinted    ErrorCode = "BADGE_ALREADY_MINTED"

	// Server-side failures. Client messages for these classes are generic;
	// the cause is only ever logged.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeStore         ErrorCode = "STORE_ERROR"
	ErrCodeSigning       ErrorCode = "SIGNING_ERROR"
)

// AppError is a typed application error carrying a code, a client-safe
// message and an optional wrapped cause.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsInternal reports whether the error belongs to a server-side class whose
// cause must not be surfaced to clients.
func (e *AppError) IsInternal() bool {
	switch e.Code {
	case ErrCodeInternal, ErrCodeConfiguration, ErrCodeStore, ErrCodeSigning:
		return true
	}
	return false
}

// ClientMessage returns the message safe to include in an HTTP response.
// Internal-class errors collapse to a generic message so that configuration
// details (missing secrets, store URLs) never leak.
func (e *AppError) ClientMessage() string {
	if e.IsInternal() {
		if e.Code == ErrCodeConfiguration {
			return "Server configuration error"
		}
		return "Internal server error"
	}
	return e.Message
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeBadRequest, ErrCodeCourseNotMapped:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeCourseIncomplete, ErrCodeUserNotFound:
		return http.StatusForbidden
	case ErrCodeConflict, ErrCodeAlreadyMinted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WithDetail attaches structured context for server-side logging.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an AppError with the given code and client message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an AppError around a cause.
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// AsAppError extracts an AppError from an error chain. Unclassified errors
// are wrapped as internal so that no raw cause reaches a client.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrCodeInternal, "Internal server error", err)
}
