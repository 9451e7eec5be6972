package types

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	withField := &ValidationError{Field: "years_experience", Message: "years of experience cannot be negative"}
	if got := withField.Error(); got != "validation error: years_experience - years of experience cannot be negative" {
		t.Errorf("Error() = %q", got)
	}

	withoutField := &ValidationError{Message: "invalid request"}
	if got := withoutField.Error(); got != "validation error: invalid request" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSecurityError_MessageOnly(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	err := &SecurityError{Message: "unable to connect to API service", Err: cause}

	// The cause is reachable for logging but never part of the message.
	if err.Error() != "unable to connect to API service" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}
