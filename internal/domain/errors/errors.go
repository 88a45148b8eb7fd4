// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"fmt"
	"net/http"

	"accounts/internal/errors"
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

// Is matches errors by business code, so instances built per request
// (carrying the offending field or id) still compare equal to the
// exported kinds below under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

// Error kinds. These carry no field information themselves; use the
// constructors below to build the instance returned to a caller.
var (
	ErrEmptyField = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FIELD",
		"a required field is empty",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"value already in use",
		"",
	)

	ErrInvalidFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FORMAT",
		"field format is invalid",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"an unexpected error occurred",
		"",
	)
)

// EmptyFieldError reports that a required input field was missing or empty.
func EmptyFieldError(field string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		ErrEmptyField.errorCode,
		fmt.Sprintf("%s cannot be empty", field),
		field,
	)
}

// ConflictError reports a uniqueness violation on the given field.
func ConflictError(field string) *BaseError {
	return NewBaseError(
		http.StatusConflict,
		ErrConflict.errorCode,
		fmt.Sprintf("%s already exists", field),
		field,
	)
}

// InvalidFormatError reports a structural validation failure on the given
// field. details enumerates the unmet requirements.
func InvalidFormatError(field, details string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		ErrInvalidFormat.errorCode,
		fmt.Sprintf("%s format is invalid", field),
		details,
	)
}

// AccountNotFoundError reports a lookup or delete against a nonexistent id.
func AccountNotFoundError(id string) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		ErrAccountNotFound.errorCode,
		fmt.Sprintf("account not found with id: %s", id),
		id,
	)
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
