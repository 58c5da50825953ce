// internal/utils/slug.go
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify normalizes a display name into a URL-safe identifier: lowercase,
// diacritics stripped, everything outside [a-z0-9] collapsed to single
// hyphens. Idempotent, so already-slugged input passes through unchanged.
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	// Decompose accented characters and drop the combining marks.
	decomposed := norm.NFD.String(lowered)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}

	// Collapse runs of separators into single hyphens.
	fields := strings.Fields(b.String())
	return strings.Join(fields, "-")
}

// IsValidSlug reports whether s matches [a-z0-9]+(-[a-z0-9]+)*.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				return false
			}
		}
	}
	return true
}
