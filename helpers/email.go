package helpers

import (
	"regexp"
	"strings"
)

// emailRegex is deliberately simple: one local part, one domain with at least
// one dot. It matches the validation the registration form data was cleaned
// against, not RFC 5322.
var emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// IsEmail reports whether s looks like a plain email address. No trimming or
// case folding is applied.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// CleanEmail lowercases and trims an email address, returning the empty
// string when the result does not look like an email address.
func CleanEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return ""
	}
	return s
}

// EmailDomain returns the domain portion of an email address and true when s
// is a valid address, or ("", false) otherwise.
func EmailDomain(s string) (string, bool) {
	if !emailRegex.MatchString(s) {
		return "", false
	}
	parts := strings.SplitN(s, "@", 2)
	return parts[1], true
}
