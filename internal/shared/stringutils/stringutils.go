package stringutils

import "unicode/utf8"

const truncationMarker = "..."

// Truncate shortens a string to at most max characters.
// When the input is too long, the tail is replaced with "..." so that the
// result is no longer than max. The cut never splits a multi-byte rune:
// it backs off to the previous rune boundary, so the output stays valid
// UTF-8 at the cost of occasionally being a byte or two short.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max <= len(truncationMarker) {
		return truncationMarker[:max]
	}

	cut := max - len(truncationMarker)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}
