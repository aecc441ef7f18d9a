// Package helpers provides text and email utilities shared across the
// registration toolkit.
package helpers

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`[\r\n]+`)
	digitsOnlyRegex = regexp.MustCompile(`^\d+$`)
)

// IsDigits reports whether s consists entirely of digits.
func IsDigits(s string) bool {
	return digitsOnlyRegex.MatchString(s)
}

// TitleCase titlecases a string using a language-independent definition of a
// word as a run of consecutive letters: the first letter of each run is
// uppercased and the remaining letters are lowercased. Non-letters pass
// through untouched and start a new word, so "example.com" becomes
// "Example.Com" and "GOOGLE" becomes "Google".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}

// NameKey reduces a personal name to a comparison key: lowercased with every
// rune that is not a letter, digit, or underscore removed. Names that differ
// only in spacing, punctuation, or case produce the same key.
func NameKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Or returns s trimmed, or fallback when s is empty or only whitespace.
func Or(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// NormalizeWhitespace normalizes all whitespace to single spaces and trims.
func NormalizeWhitespace(s string) string {
	s = newlineRegex.ReplaceAllString(s, " ")
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TruncateText truncates text to a maximum length, adding ellipsis if needed.
func TruncateText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}

	// Try to truncate at a word boundary
	truncated := s[:maxLen-3]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return truncated + "..."
}
