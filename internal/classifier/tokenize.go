package classifier

import (
	"strings"
	"unicode"
)

// MinTokenLen is the shortest run of word characters kept as a term.
const MinTokenLen = 2

// Tokenize lowercases text and splits it into terms. A term is a run of at
// least MinTokenLen letters, digits or underscores; everything else separates.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= MinTokenLen {
			out = append(out, f)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
