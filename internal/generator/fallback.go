package generator

import (
	"fmt"

	"github.com/jonathan/jobgen/internal/types"
)

// Fallback produces a deterministic job description for when the completion
// service returns something unusable. It is pure and always succeeds; this is
// the availability backstop for the generate endpoint. The title
// interpolations are caller-supplied input already validated at the boundary,
// so they are not sanitized here.
func Fallback(title, companyName, companyOverview string, years int, level types.ExperienceLevel, location, employmentType string) *types.JobDescription {
	return &types.JobDescription{
		CompanyName:     companyName,
		CompanyOverview: companyOverview,
		Title:           title,
		ExperienceLevel: level,
		ExperienceYears: years,
		Responsibilities: []string{
			fmt.Sprintf("Lead %s initiatives and projects", title),
			"Collaborate with cross-functional teams",
			"Implement industry best practices",
			"Develop and maintain documentation",
			"Contribute to process improvements",
		},
		Qualifications: []string{
			fmt.Sprintf("Proven experience as a %s", title),
			"Strong analytical and problem-solving skills",
			"Excellent communication abilities",
			"Team collaboration experience",
			"Relevant technical expertise",
		},
		RequiredSkills: []string{
			"Communication",
			"Project Management",
			"Problem Solving",
		},
		OptionalSkills: []string{
			"Leadership",
			"Industry-specific knowledge",
			"Relevant certifications",
		},
		Location:       location,
		EmploymentType: employmentType,
	}
}
