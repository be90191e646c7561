package llm

import "fmt"

// CompletionErrorType categorizes completion errors.
type CompletionErrorType int

const (
	// RequestFailed indicates the HTTP request could not be performed.
	RequestFailed CompletionErrorType = iota
	// BadStatus indicates the provider answered with a non-2xx status.
	BadStatus
	// EmptyResponse indicates the provider answered without any content.
	EmptyResponse
	// MissingAPIKey indicates no API key was configured.
	MissingAPIKey
)

// CompletionError represents a provider call failure.
type CompletionError struct {
	// Type categorizes the error.
	Type CompletionErrorType
	// Message is the error message.
	Message string
	// StatusCode is the HTTP status code (BadStatus only).
	StatusCode int
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion failed (status %d): %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("completion failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CompletionError) Unwrap() error {
	return e.Cause
}

// newCompletionError creates a new CompletionError.
func newCompletionError(typ CompletionErrorType, message string, cause error) *CompletionError {
	return &CompletionError{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
}
