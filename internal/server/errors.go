// Package server provides the HTTP REST API for the job description generator.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/jobgen/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// ValidationErrors are the caller's fault in a recoverable way (422),
// SecurityErrors carry a user-safe message (400), and everything else is an
// internal failure that must not leak detail (500).
func HTTPStatus(err error) int {
	var verr *types.ValidationError
	var serr *types.SecurityError

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &serr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
