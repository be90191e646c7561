package plan

import "fmt"

// ErrorType categorizes plan errors.
type ErrorType int

const (
	// MalformedResponse indicates no extraction strategy yielded valid JSON.
	MalformedResponse ErrorType = iota
	// InvalidPath indicates an absolute or traversal-escaping path candidate.
	InvalidPath
)

// Error represents a path-planning error with the offending input attached.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Input is the offending input (a path candidate or a response excerpt).
	Input string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (input: %q): %v", e.Message, e.Input, e.Cause)
		}
		return fmt.Sprintf("%s (input: %q)", e.Message, e.Input)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a new Error with the given type, message and input.
func newError(typ ErrorType, message, input string) *Error {
	return &Error{
		Type:    typ,
		Message: message,
		Input:   input,
	}
}

// IsInvalidPath reports whether err is a plan error of type InvalidPath.
func IsInvalidPath(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == InvalidPath
}

// IsMalformedResponse reports whether err is a plan error of type MalformedResponse.
func IsMalformedResponse(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == MalformedResponse
}
