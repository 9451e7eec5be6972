// Package generator implements the job description generation pipeline:
// experience classification, prompt construction, the upstream completion
// call, response parsing and sanitization, and the deterministic fallback.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/jonathan/jobgen/internal/llm"
	"github.com/jonathan/jobgen/internal/types"
)

const (
	maxListItems  = 7
	maxSkillItems = 10
)

// Generator owns the end-to-end generation flow for a single request. It is
// safe for concurrent use: the only state is the read-only client and logger.
type Generator struct {
	client llm.Client
	logger *slog.Logger
}

// New creates a Generator backed by the given completion client.
func New(client llm.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// completionPayload holds the four sections parsed from the model reply.
// Items decode as any so that non-string entries sanitize to "".
type completionPayload struct {
	Responsibilities []any `json:"responsibilities"`
	Qualifications   []any `json:"qualifications"`
	RequiredSkills   []any `json:"required_skills"`
	OptionalSkills   []any `json:"optional_skills"`
}

// Generate produces a job description for the validated request. Upstream
// transport and auth failures surface as SecurityErrors; a successful but
// malformed completion silently degrades to the fallback template.
func (g *Generator) Generate(ctx context.Context, req *types.JobRequest) (*types.JobDescription, error) {
	level, err := CategorizeExperience(req.YearsExperience)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req.JobTitle, req.YearsExperience, level,
		req.CompanyName, req.CompanyOverview, req.Skills, req.Location, req.EmploymentType)

	content, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, wrapUnexpected(err)
	}

	jsonStr, ok := sliceJSONObject(content)
	if !ok {
		g.logger.Warn("no JSON object found in API response")
		return g.fallbackFor(req, level), nil
	}

	if !validateCompletion(jsonStr) {
		g.logger.Warn("missing required sections in API response")
		return g.fallbackFor(req, level), nil
	}

	var parsed completionPayload
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		g.logger.Warn("error parsing API response", "error", err)
		return g.fallbackFor(req, level), nil
	}

	return &types.JobDescription{
		CompanyName:      req.CompanyName,
		CompanyOverview:  req.CompanyOverview,
		Title:            req.JobTitle,
		ExperienceLevel:  level,
		ExperienceYears:  req.YearsExperience,
		Responsibilities: sanitizeItems(parsed.Responsibilities, maxListItems),
		Qualifications:   sanitizeItems(parsed.Qualifications, maxListItems),
		RequiredSkills:   sanitizeItems(parsed.RequiredSkills, maxSkillItems),
		OptionalSkills:   sanitizeItems(parsed.OptionalSkills, maxSkillItems),
		Location:         req.Location,
		EmploymentType:   req.EmploymentType,
	}, nil
}

func (g *Generator) fallbackFor(req *types.JobRequest, level types.ExperienceLevel) *types.JobDescription {
	g.logger.Info("generated fallback job description")
	return Fallback(req.JobTitle, req.CompanyName, req.CompanyOverview,
		req.YearsExperience, level, req.Location, req.EmploymentType)
}

// sliceJSONObject slices between the first '{' and the last '}' inclusive.
// Extraneous prose around the object is tolerated. The heuristic knowingly
// assumes no unbalanced braces inside string values; its first/last semantics
// are observable behavior and must be preserved as-is.
func sliceJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// wrapUnexpected passes taxonomy errors through unchanged and converts
// anything else into a generic SecurityError so no internal detail reaches
// the caller.
func wrapUnexpected(err error) error {
	var verr *types.ValidationError
	var serr *types.SecurityError
	if errors.As(err, &verr) || errors.As(err, &serr) {
		return err
	}
	return &types.SecurityError{
		Message: "an error occurred while generating the job description",
		Err:     err,
	}
}
