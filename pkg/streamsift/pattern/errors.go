package pattern

import "fmt"

// ValidationError represents a schema-level validation error.
// These errors occur when a configuration violates structural requirements
// (e.g., unknown field name, unsupported version number).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PatternError represents an error specific to an individual pattern
// (e.g., invalid regex syntax, pattern too long).
type PatternError struct {
	Field   string // Configuration field the pattern belongs to ("include", "exclude", or a field name)
	Message string
	Cause   error // Underlying error (e.g., regex compile error)
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause of the error.
// This enables errors.Is() and errors.As() to work with PatternError.
func (e *PatternError) Unwrap() error {
	return e.Cause
}
