package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobgen/internal/types"
)

// promptTemplate embeds the output format instructions. The four field names
// are re-checked structurally when the completion is parsed, so they must not
// drift from completionSchema.
const promptTemplate = `Please generate a professional job description for a %s position.
Company: %s
Company Overview: %s
Role: %s (%s level, %d years experience required)
Required skills: %s%s

Format the response strictly as a JSON object with the following structure:
{
    "responsibilities": [
        "responsibility 1",
        "responsibility 2",
        ...
    ],
    "qualifications": [
        "qualification 1",
        "qualification 2",
        ...
    ],
    "required_skills": [
        "skill 1",
        "skill 2",
        ...
    ],
    "optional_skills": [
        "skill 1",
        "skill 2",
        ...
    ]
}

Include 5-7 items in responsibilities and qualifications lists.
Extract and categorize skills into required and optional based on industry standards.
Focus on professional standards and industry requirements for %s level positions with %d years of experience.`

// escapeField encodes a caller-supplied value as a JSON string literal and
// strips the surrounding quotes. Quotes and control characters can no longer
// terminate the prompt structure they are interpolated into.
func escapeField(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}

// BuildPrompt assembles the natural-language prompt sent to the completion
// service. Every free-text field from the caller is escaped before
// interpolation; optional fields append labeled lines only when present.
func BuildPrompt(title string, years int, level types.ExperienceLevel, companyName, companyOverview string, skills []string, location, employmentType string) string {
	safeTitle := escapeField(title)
	safeCompany := escapeField(companyName)
	safeOverview := escapeField(companyOverview)

	safeSkills := make([]string, len(skills))
	for i, skill := range skills {
		safeSkills[i] = escapeField(skill)
	}
	skillsStr := strings.Join(safeSkills, ", ")

	var additional strings.Builder
	if location != "" {
		additional.WriteString("\nLocation: " + escapeField(location))
	}
	if employmentType != "" {
		additional.WriteString("\nEmployment Type: " + escapeField(employmentType))
	}

	return fmt.Sprintf(promptTemplate,
		safeTitle, safeCompany, safeOverview, safeTitle, level, years,
		skillsStr, additional.String(), level, years)
}
