package generator

import "github.com/xeipuuv/gojsonschema"

// completionSchema is the structural contract the model is instructed to
// follow in promptTemplate. Only presence and array-ness of the four sections
// are enforced; item contents go through Sanitize instead.
const completionSchema = `{
	"type": "object",
	"required": ["responsibilities", "qualifications", "required_skills", "optional_skills"],
	"properties": {
		"responsibilities": {"type": "array"},
		"qualifications": {"type": "array"},
		"required_skills": {"type": "array"},
		"optional_skills": {"type": "array"}
	}
}`

// validateCompletion reports whether the sliced JSON object satisfies the
// completion schema. Any failure, including unparseable JSON, degrades to the
// fallback generator rather than surfacing an error.
func validateCompletion(jsonStr string) bool {
	schemaLoader := gojsonschema.NewStringLoader(completionSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonStr)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return false
	}
	return result.Valid()
}
