package cmd

import (
	"html"
	"strings"
)

// renderText converts rendered WordPress HTML to plain text for terminal
// output. Tags are dropped, entities are decoded and runs of whitespace
// collapse to single spaces.
func renderText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}
