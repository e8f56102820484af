// Package llmoutput turns free-form completion text into typed suggestion
// items. Normalize isolates the most plausible JSON object; Validate checks
// it against the suggestion-list shape.
package llmoutput

import (
	"errors"
	"strings"
)

// ErrNoJSONFound is returned when the text contains no {...} pair.
var ErrNoJSONFound = errors.New("no json object found in response")

const fence = "```"

// Normalize strips a wrapping code fence and surrounding prose from raw
// model output and returns the substring between the first '{' and the
// last '}'. Text inside the object is never rewritten.
// The result is not guaranteed to be valid JSON.
func Normalize(raw string) (string, error) {
	s := stripFence(strings.TrimSpace(raw))

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSONFound
	}
	return s[start : end+1], nil
}

// stripFence removes an opening fence with its optional language tag and a
// closing fence, only at the ends of s.
func stripFence(s string) string {
	if rest, ok := strings.CutPrefix(s, fence); ok {
		s = strings.TrimLeft(rest, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_+.-")
	}
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, fence); ok {
		s = strings.TrimSpace(rest)
	}
	return s
}
