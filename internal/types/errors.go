package types

import "fmt"

// ValidationError indicates malformed or out-of-range caller input.
// It is always surfaced to the caller and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// SecurityError indicates a credential problem or an upstream call failure.
// Message is safe to return to the caller; Err holds the underlying cause
// for server-side logging and must never be echoed.
type SecurityError struct {
	Message string
	Err     error
}

func (e *SecurityError) Error() string {
	return e.Message
}

func (e *SecurityError) Unwrap() error {
	return e.Err
}
