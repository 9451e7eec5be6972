package generator

import "github.com/jonathan/jobgen/internal/types"

// CategorizeExperience maps years of experience to a coarse level. The cut
// points (0-3, 4-7, 8+) are part of the output contract: the level text
// appears verbatim in generated descriptions and in the levels endpoint.
func CategorizeExperience(years int) (types.ExperienceLevel, error) {
	if years < 0 {
		return "", &types.ValidationError{
			Field:   "years_experience",
			Message: "years of experience cannot be negative",
		}
	}

	switch {
	case years <= 3:
		return types.LevelEntry, nil
	case years <= 7:
		return types.LevelMid, nil
	default:
		return types.LevelSenior, nil
	}
}
