package models

import (
	"regexp"
	"strings"
)

var (
	nonWordChars   = regexp.MustCompile(`[^\w\s]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe identifier from a free-text title: lowercase,
// strip everything that is not a word character or whitespace, then collapse
// each whitespace run to a single hyphen. Leading and trailing whitespace
// collapses to a hyphen as well, it is not trimmed. Slugify gives no
// uniqueness guarantee; callers check for collisions themselves.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonWordChars.ReplaceAllString(slug, "")
	return whitespaceRuns.ReplaceAllString(slug, "-")
}
