// Package textutils provides text normalization for keyword matching.
package textutils

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and drops every rune that is not an ASCII letter,
// an ASCII digit or whitespace. Whitespace runs are kept as they are.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
