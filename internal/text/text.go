// Package text provides small display helpers for fixed-width terminal
// layouts.
package text

import "strings"

// Truncate shortens s to at most n display characters, appending an
// ellipsis when it had to cut. Counts runes, not bytes, so multi-byte
// product names stay intact. If n < 4, uses n = 4 to ensure room for "...".
func Truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// Wrap wraps s to a maximum width, breaking on word boundaries. Existing
// newlines are preserved; a single word longer than width is left unbroken
// on its own line.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		if line == "" {
			continue
		}
		if len([]rune(line)) <= width {
			out.WriteString(line)
			continue
		}
		out.WriteString(wrapLine(line, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	var out strings.Builder
	used := 0
	for _, word := range strings.Fields(line) {
		n := len([]rune(word))
		switch {
		case used == 0:
			out.WriteString(word)
			used = n
		case used+1+n > width:
			out.WriteString("\n")
			out.WriteString(word)
			used = n
		default:
			out.WriteString(" ")
			out.WriteString(word)
			used += 1 + n
		}
	}
	return out.String()
}
