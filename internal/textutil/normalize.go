package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, trims surrounding whitespace, drops control
// characters and strips a leading byte order mark.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// SymptomKey normalizes a symptom name for matching: NFKC, lowercase, inner
// whitespace and hyphens folded to underscores. "Runny Nose" and "runny_nose"
// share a key.
func SymptomKey(s string) string {
	s = strings.ToLower(Normalize(s))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), "_")
}
