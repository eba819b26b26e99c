package internal

import "strings"

// Version is set at build time via -ldflags.
var Version = "dev"

// SanitizeFilename creates a safe, lowercase filename component from a string.
// Anything outside [a-zA-Z0-9.-] becomes an underscore, so the same word
// always maps to the same filename.
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isFilenameSafe(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.ToLower(b.String())
}

func isFilenameSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '.' || r == '-'
}
