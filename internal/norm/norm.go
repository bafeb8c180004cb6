// Package norm folds product text for comparison: case, accents, punctuation.
package norm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD decomposition + drop combining marks, so "Médico" and "Medico" collide.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, strips diacritics and removes everything outside [a-z0-9].
// Total and idempotent: Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// transform failed on malformed input; fold what we have
		out = strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
