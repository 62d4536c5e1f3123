package tui

import "strings"

// WrapText breaks text into lines no wider than maxWidth, preferring word
// boundaries and preserving the original newlines. Widths count runes, not
// bytes, so multibyte content is never split mid-character. Height
// truncation is the renderer's job, not done here.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{}
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if len([]rune(raw)) <= maxWidth {
			lines = append(lines, raw)
			continue
		}
		lines = append(lines, wrapLine(raw, maxWidth)...)
	}

	return lines
}

// wrapLine wraps one overlong line at word boundaries. A single word wider
// than maxWidth is chunked mid-word as a last resort.
func wrapLine(line string, maxWidth int) []string {
	var lines []string
	current := make([]rune, 0, maxWidth)

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(line) {
		runes := []rune(word)

		if len(runes) > maxWidth {
			flush()
			for start := 0; start < len(runes); start += maxWidth {
				end := min(start+maxWidth, len(runes))
				lines = append(lines, string(runes[start:end]))
			}
			continue
		}

		needed := len(runes)
		if len(current) > 0 {
			needed++ // the joining space
		}
		if len(current)+needed > maxWidth {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}

	flush()
	return lines
}
