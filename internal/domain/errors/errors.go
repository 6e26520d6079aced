package errors

import (
	"net/http"

	"enroll/internal/errors"
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

// Predefined error types
var (
	// Account-related errors
	ErrDuplicateAccount = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ACCOUNT",
		"Email already registered",
		"",
	)

	ErrInvalidConfirmation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONFIRMATION",
		"Invalid confirmation code",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"User not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// Enrollment-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request body",
		"",
	)

	// Catch-all for connectivity, query and primitive failures
	ErrStoreFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"Server error",
		"",
	)
)

// StoreFailureError represents a store or primitive failure, implementing the AppError interface.
// The cause stays in the chain for logs but never reaches the client.
type StoreFailureError struct {
	err     error
	details string
}

// NewStoreFailure wraps a low-level failure so it surfaces as ErrStoreFailure
func NewStoreFailure(err error, details string) AppError {
	return &StoreFailureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreFailureError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the underlying cause
func (e *StoreFailureError) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrStoreFailure
func (e *StoreFailureError) Is(target error) bool {
	return target == ErrStoreFailure
}

// HTTPCode returns the HTTP status code
func (e *StoreFailureError) HTTPCode() int {
	return ErrStoreFailure.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreFailureError) ErrorCode() string {
	return ErrStoreFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreFailureError) Message() string {
	return ErrStoreFailure.Message()
}

// Details returns detailed error information
func (e *StoreFailureError) Details() string {
	return e.details
}
