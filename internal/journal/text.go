package journal

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChars  = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases text and reduces it to word characters separated by single hyphens.
// Non-latin letters are kept. With tag set, the slug is prefixed with '#'.
func Slugify(text string, tag bool) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if tag {
		return "#" + slug
	}
	return slug
}

// validTag reports whether slug (without '#') is a usable vault tag. Tags may not start with a digit.
func validTag(slug string) bool {
	return slug != "" && (slug[0] < '0' || slug[0] > '9')
}

// UnwrapQuotes trims whitespace and removes one pair of wrapping double quotes.
// Daylio exports wrap every free-text cell, so `""` becomes the empty string.
func UnwrapQuotes(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	return strings.TrimSpace(trimmed)
}

// SplitActivities unwraps quotes, splits on delimiter and drops blank pieces.
func SplitActivities(text, delimiter string) []string {
	unwrapped := UnwrapQuotes(text)
	if unwrapped == "" {
		return nil
	}
	var pieces []string
	for _, piece := range strings.Split(unwrapped, delimiter) {
		if strings.TrimSpace(piece) != "" {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}
