package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ResolveFailed indicates template resolution failed.
	ResolveFailed AppErrorType = iota
	// PlanFailed indicates path planning failed.
	PlanFailed
	// GenerateFailed indicates generation failed.
	GenerateFailed
	// SelectionAborted indicates the user aborted candidate selection.
	SelectionAborted
	// ValidationFailed indicates validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewResolveError creates a template resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
