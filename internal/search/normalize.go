// Package search turns cell text into web search URLs: query normalization
// plus URL templating against a configurable engine registry.
package search

import (
	"strings"
	"unicode"
)

// Normalize prepares raw cell text for use as a search query: CR/LF and
// ideographic (full-width) spaces become ordinary spaces, runs of whitespace
// collapse to one space, and leading/trailing whitespace is stripped.
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
