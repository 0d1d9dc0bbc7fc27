package errors

import (
	"net/http"

	"haven/internal/errors"
)

// NoticeKind selects which flash bucket a recoverable error is reported in.
type NoticeKind string

// NoticeError is the only bucket guards report denials in.
const NoticeError NoticeKind = "error"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing notice
	Details() string   // Detailed error information (optional)
	Redirect() string  // Where a recovered request is sent, empty when fatal
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	redirect  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, redirect string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		redirect:  redirect,
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

// Message returns the user-facing notice
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Redirect returns the recovery target of the error
func (e *BaseError) Redirect() string {
	return e.redirect
}

const (
	pathListings = "/listings"
	pathLogin    = "/login"
	pathSignup   = "/signup"
)

// Predefined error types
var (
	// NotFound
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing you requested for does not exist!",
		pathListings,
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review you requested for does not exist!",
		pathListings,
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		pathListings,
	)

	// AuthFailure
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"You must be logged in to do that!",
		pathLogin,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Password or username is incorrect",
		pathLogin,
	)

	// AuthorizationFailure
	ErrNotListingOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_LISTING_OWNER",
		"You are not the owner of this listing",
		pathListings,
	)

	ErrNotReviewAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_REVIEW_AUTHOR",
		"You are not the author of this review",
		pathListings,
	)

	// ValidationFailure
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with the given username is already registered",
		pathSignup,
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some of the submitted fields are invalid",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Could not process password",
		"",
	)

	// ErrInternalError is what the error page shows for failures without a notice of their own.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing notice
func (e *DatabaseExecuteError) Message() string {
	return "Something went wrong"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Redirect is empty: persistence failures are fatal to the request
func (e *DatabaseExecuteError) Redirect() string {
	return ""
}

// IsRecoverable reports whether err is an AppError that is answered with a notice and redirect.
func IsRecoverable(err error) (AppError, bool) {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return nil, false
	}

	return appErr, appErr.Redirect() != ""
}
