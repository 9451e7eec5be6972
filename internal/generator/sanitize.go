package generator

import (
	"regexp"
	"strings"
)

// maliciousPatterns are removed from completion output in this exact order,
// before angle brackets are entity-escaped. Tag patterns must run while the
// markup is still recognizable, so removal always precedes escaping.
var maliciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe[^>]*>`),
	regexp.MustCompile(`(?i)<object[^>]*>`),
	regexp.MustCompile(`(?i)<embed[^>]*>`),
	regexp.MustCompile(`(?i)<link[^>]*>`),
	regexp.MustCompile(`(?i)<style[^>]*>.*?</style>`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)import\s+`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)eval\s*\(`),
}

// Sanitize strips dangerous markup from a single item of completion output
// and entity-escapes any remaining angle brackets. It is not a full HTML
// sanitizer.
func Sanitize(text string) string {
	for _, pattern := range maliciousPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")

	return strings.TrimSpace(text)
}

// sanitizeItems truncates a decoded JSON array to limit entries and
// sanitizes each one. Non-string entries sanitize to the empty string.
func sanitizeItems(items []any, limit int) []string {
	if len(items) > limit {
		items = items[:limit]
	}

	out := make([]string, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			out[i] = Sanitize(s)
		}
	}
	return out
}
