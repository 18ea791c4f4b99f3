// Package hexcolor provides boundary helpers for hex color strings.
//
// The grid model accepts colors as opaque strings and passes them through
// into generated output unvalidated; these helpers exist for UI layers that
// want to compare or sanity-check values without changing that contract.
package hexcolor

import "strings"

// Normalize lower-cases s and ensures a leading '#'. It never rejects a
// value; anything non-hex comes back lower-cased with the prefix added.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// Valid reports whether s is a #rgb or #rrggbb hex color.
func Valid(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
