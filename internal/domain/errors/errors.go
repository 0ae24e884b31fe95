package errors

import (
	"net/http"

	"bistro/internal/errors"
)

// Business error codes. They double as message keys for localization.
const (
	CodeAccountAlreadyExists  = "USER_ALREADY_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodePasswordTooLong       = "PASSWORD_TOO_LONG"
	CodePasswordHashFailed    = "PASSWORD_HASH_FAILED"
	CodeSessionFailed         = "SESSION_FAILED"
	CodeDatabaseExecuteFailed = "DATABASE_EXECUTE_FAILED"
	CodeNotFound              = "NOT_FOUND"
	CodeHTTPError             = "HTTP_ERROR"
	CodeInternalError         = "INTERNAL_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Default (English) user-facing message
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

// Predefined error types
var (
	// Registration
	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeAccountAlreadyExists,
		"This user already exists",
		"",
	)

	// Login. Unknown email and wrong password share this error on purpose.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"Login or password incorrect",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Please check the form fields",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		CodePasswordTooLong,
		"Password is too long",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		CodePasswordHashFailed,
		"Password processing failed",
		"",
	)

	ErrSessionFailed = NewBaseError(
		http.StatusInternalServerError,
		CodeSessionFailed,
		"Database session failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Page not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal server error",
		"",
	)
)

// FormErrors are the errors a form handler renders back into its own view
// instead of handing them to the central error handler.
var FormErrors = []error{
	ErrAccountAlreadyExists,
	ErrInvalidCredentials,
	ErrValidationFailed,
	ErrPasswordTooLong,
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecuteFailed
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
