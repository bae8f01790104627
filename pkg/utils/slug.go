package utils

import (
	"strings"
	"unicode"
)

// Slugify lower-cases s and joins alphanumeric runs with single dashes.
// "Summer Sale 2026!" -> "summer-sale-2026"
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// IsSlug reports whether s is already in Slugify form
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
