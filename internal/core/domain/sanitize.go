package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// SanitizeText normalizes a raw input string: trims leading/trailing
// whitespace, collapses internal whitespace runs to a single space, and
// truncates to maxLen characters. Truncation counts runes, not bytes, so
// multi-byte text is never cut mid-rune into invalid UTF-8.
// It never fails; empty input yields an empty string.
func SanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	if utf8.RuneCountInString(s) > maxLen {
		s = string([]rune(s)[:maxLen])
	}
	return s
}
