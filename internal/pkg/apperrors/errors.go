package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// Access code redemption refusals
var (
	ErrAccessCodeNotFound      = errors.New("invalid access code")
	ErrAccessCodeInactive      = errors.New("access code is no longer active")
	ErrAccessCodeExpired       = errors.New("access code has expired")
	ErrAccessCodeUsageExceeded = errors.New("access code has reached its usage limit")
	ErrAccessCodeAlreadyExists = errors.New("access code already exists")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrAdminAuthFailed = errors.New("admin authentication failed")
)

// Content source errors
var (
	ErrContentSourceNotConfigured = errors.New("content source not configured for this course")
	ErrTestNotFound               = errors.New("test not found")
	ErrGenerationFailed           = errors.New("failed to generate test")
	ErrUpstreamFailure            = errors.New("content store request failed")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewUpstreamError marks err as a content store failure while keeping a
// user-facing message for the response envelope.
func NewUpstreamError(message string, err error) error {
	return &CustomError{
		Err:       errors.Join(ErrUpstreamFailure, err),
		Message:   message,
		StatusMsg: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
