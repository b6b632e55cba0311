package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a title. Used when a blog or
// course upsert omits the slug.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugDashes.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
