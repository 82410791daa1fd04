package apperrors

import "errors"

// Sentinel error kinds. Every error that crosses the service boundary wraps one
// of these so the API layer can translate it to a status code in one place.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrAuthRequired     = errors.New("authentication required")
	ErrAccessDenied     = errors.New("access denied")
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal error")
)

// Token errors
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Error carries a client-visible message alongside the sentinel kind.
type Error struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &Error{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &Error{Err: ErrNotFound, Message: message}
}

// NewForbiddenError creates an access-denied error with a message
func NewForbiddenError(message string) error {
	return &Error{Err: ErrAccessDenied, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &Error{Err: ErrConflict, Message: message}
}

// Message returns the client-visible message for err, or fallback when err does
// not carry one.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
