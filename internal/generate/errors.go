package generate

import "fmt"

// ErrorType categorizes generation errors.
type ErrorType int

const (
	// WriteFailed indicates a filesystem write or mkdir failed.
	WriteFailed ErrorType = iota
	// ContentFailed indicates a per-file content-generation call failed.
	ContentFailed
)

// GenerateError represents a generation-stage error.
type GenerateError struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Path is the target path related to the error.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// newGenerateError creates a new GenerateError.
func newGenerateError(typ ErrorType, message, path string, cause error) *GenerateError {
	return &GenerateError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
