// Package errors defines application errors that carry an HTTP status and a
// business error code, plus the predefined values the usecases translate
// repository sentinels into.
package errors

import (
	"net/http"

	"musea/internal/errors"
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

// NewDatabaseExecuteError wraps a backend failure as a generic 500.
func NewDatabaseExecuteError(err error, details string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		details,
	)

	return errors.Wrap(base, err.Error())
}

var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Not authenticated",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username already exists",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Catalog errors
	ErrExhibitionNotFound = NewBaseError(
		http.StatusNotFound,
		"EXHIBITION_NOT_FOUND",
		"Exhibition not found",
		"",
	)

	ErrTicketTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_TYPE_NOT_FOUND",
		"Ticket type not found",
		"",
	)

	// Ticket lifecycle errors
	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"Ticket not found",
		"",
	)

	ErrNotTicketOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_TICKET_OWNER",
		"Not authorized",
		"",
	)

	ErrTicketAlreadyPaid = NewBaseError(
		http.StatusBadRequest,
		"TICKET_ALREADY_PAID",
		"Ticket already paid",
		"",
	)

	ErrTicketNotPaid = NewBaseError(
		http.StatusBadRequest,
		"TICKET_NOT_PAID",
		"Ticket has not been paid",
		"",
	)

	ErrTicketNotCancellable = NewBaseError(
		http.StatusBadRequest,
		"TICKET_NOT_CANCELLABLE",
		"Only unpaid, unused tickets with a future visit date can be cancelled",
		"",
	)

	// Chatbot errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	// Testimonial errors
	ErrTestimonialNotFound = NewBaseError(
		http.StatusNotFound,
		"TESTIMONIAL_NOT_FOUND",
		"Testimonial not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Not authorized",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
