package history

import (
	"strings"
	"unicode"
)

// Preview returns a single-line display form of content: control characters
// become spaces, runs of whitespace collapse, and the result is truncated to
// at most maxLen runes with a trailing "..." when it was cut.
func Preview(content string, maxLen int) string {
	collapsed := sanitize(content)

	runes := []rune(collapsed)
	if len(runes) <= maxLen {
		return collapsed
	}

	if maxLen < 3 {
		return strings.Repeat(".", maxLen)
	}

	return string(runes[:maxLen-3]) + "..."
}

// sanitize removes control characters and collapses whitespace so arbitrary
// clipboard content is safe to print on one terminal line.
func sanitize(content string) string {
	content = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, content)

	fields := strings.Fields(content)
	return strings.Join(fields, " ")
}
