package merge

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize canonicalizes an identity candidate for matching.
// Non-text values and blank strings produce no key.
func Normalize(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// Casers carry state, so a fresh one is built per call
	return cases.Fold().String(s), true
}

// text returns v when it is a string with non-blank content
func text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// firstText returns the first non-empty string among values
func firstText(values ...any) (string, bool) {
	for _, v := range values {
		if s, ok := text(v); ok {
			return s, true
		}
	}
	return "", false
}
