package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/jobgen/internal/types"
)

// handleRoot returns the welcome payload.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Job Description Generator API",
	})
}

// handleHealth returns server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleExperienceLevels returns the static level table.
func (s *Server) handleExperienceLevels(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"experience_levels": types.ExperienceLevels(),
	})
}

// handleGenerateJob generates a job description from the posted parameters.
// Degraded (fallback) results are still a 201; only validation and upstream
// failures surface as errors.
func (s *Server) handleGenerateJob(w http.ResponseWriter, r *http.Request) {
	var req types.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, extractValidationErrors(err))
		return
	}

	desc, err := s.generator.Generate(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("unexpected generation error", "error", err)
			s.errorResponse(w, status, "an error occurred while generating the job description")
			return
		}

		// Taxonomy errors carry a user-safe message; the underlying cause is
		// logged here and goes no further.
		s.logger.Error("generation failed",
			"status", status,
			"error", err,
			"cause", errors.Unwrap(err),
		)
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, desc)
}

// extractValidationErrors extracts validation error messages from validator
// errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
