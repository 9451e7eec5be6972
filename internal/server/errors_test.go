package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/jobgen/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation error",
			err:      &types.ValidationError{Field: "years_experience", Message: "years of experience cannot be negative"},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "security error",
			err:      &types.SecurityError{Message: "API authentication failed"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped validation error",
			err:      fmt.Errorf("generate: %w", &types.ValidationError{Message: "bad input"}),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "wrapped security error",
			err:      fmt.Errorf("generate: %w", &types.SecurityError{Message: "API request failed"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := HTTPStatus(tt.err); status != tt.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, status, tt.expected)
			}
		})
	}
}
