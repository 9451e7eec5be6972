// Package types provides type definitions for structured data used throughout the jobgen system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ExperienceLevel is the coarse experience tier derived from years of experience.
type ExperienceLevel string

// Experience levels. The level text appears verbatim in generated
// descriptions and in the levels endpoint, so these values are part of the
// API contract.
const (
	LevelEntry  ExperienceLevel = "Entry"
	LevelMid    ExperienceLevel = "Mid"
	LevelSenior ExperienceLevel = "Senior"
)

// ExperienceLevelInfo pairs a level with its years range for the static
// levels endpoint.
type ExperienceLevelInfo struct {
	Level      ExperienceLevel `json:"level"`
	YearsRange string          `json:"years_range"`
}

// ExperienceLevels returns the level table exposed by the read endpoint.
// The ranges mirror the cut points in generator.CategorizeExperience.
func ExperienceLevels() []ExperienceLevelInfo {
	return []ExperienceLevelInfo{
		{Level: LevelEntry, YearsRange: "0-3"},
		{Level: LevelMid, YearsRange: "4-7"},
		{Level: LevelSenior, YearsRange: "8+"},
	}
}

// JobRequest represents the posted job-description generation parameters.
type JobRequest struct {
	JobTitle        string   `json:"job_title" validate:"required,min=1"`
	YearsExperience int      `json:"years_experience" validate:"min=0"`
	CompanyName     string   `json:"company_name" validate:"required"`
	CompanyOverview string   `json:"company_overview"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	Location        string   `json:"location,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
}

// Validate validates the JobRequest using the validator.
func (r *JobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobDescription is the generated result. It is constructed exactly once per
// request, either from the sanitized completion output or from the fallback
// generator, and is never mutated afterwards.
type JobDescription struct {
	CompanyName      string          `json:"company_name"`
	CompanyOverview  string          `json:"company_overview"`
	Title            string          `json:"title"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	ExperienceYears  int             `json:"experience_years"`
	Responsibilities []string        `json:"responsibilities"`
	Qualifications   []string        `json:"qualifications"`
	RequiredSkills   []string        `json:"required_skills"`
	OptionalSkills   []string        `json:"optional_skills"`
	Location         string          `json:"location,omitempty"`
	EmploymentType   string          `json:"employment_type,omitempty"`
}
