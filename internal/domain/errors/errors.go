package errors

import (
	"net/http"

	"taskflow/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
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

// Message returns the user-facing message
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

// Is matches on the business error code so that copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation Error.",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body.",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests.",
		"",
	)

	// User-related errors
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"Email already exists.",
		"",
	)

	// Authentication-related errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Please login.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials.",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"Refresh token missing.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token.",
		"",
	)

	// Task-related errors
	ErrTaskIDRequired = NewBaseError(
		http.StatusBadRequest,
		"TASK_ID_REQUIRED",
		"Task ID is required.",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// ValidationError carries the first failing message per request field.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error for the given field messages
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.message
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.httpCode
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.errorCode
}

// Message returns the user-facing message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.message
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the per-field messages keyed by JSON field name
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// Is lets errors.Is(err, ErrValidationFailed) match a ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// InternalServerError hides an unexpected cause behind the generic 500 response
// while keeping it reachable for logging.
type InternalServerError struct {
	err error
}

// NewInternalError wraps an unexpected failure. AppErrors pass through untouched.
func NewInternalError(err error) AppError {
	if appErr, ok := errors.AsTarget[AppError](err); ok {
		return appErr
	}

	return &InternalServerError{err: err}
}

// Error implements the error interface
func (e *InternalServerError) Error() string {
	if e.err == nil {
		return ErrInternalError.message
	}

	return errors.WithMessage(e.err, "internal error").Error()
}

// Unwrap returns the underlying cause
func (e *InternalServerError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *InternalServerError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *InternalServerError) ErrorCode() string {
	return ErrInternalError.errorCode
}

// Message returns the user-facing message
func (e *InternalServerError) Message() string {
	return ErrInternalError.message
}

// Details returns detailed error information
func (e *InternalServerError) Details() string {
	return ""
}
