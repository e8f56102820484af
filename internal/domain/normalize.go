package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses every run of whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// BackgroundPrefix returns the first n runes of the normalized background.
// Two inputs with equal prefixes are treated as near-duplicates by the
// similarity cache.
func BackgroundPrefix(background string, n int) string {
	normalized := NormalizeText(background)
	if n <= 0 || utf8.RuneCountInString(normalized) <= n {
		return normalized
	}
	runes := []rune(normalized)
	return string(runes[:n])
}
