package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName returns the matching key for a song title.
//
// The title is lower-cased, every rune that is not a letter, number, underscore or
// whitespace is dropped, and whitespace runs collapse to a single space. Combining
// marks are not letters, so a decomposed accent is dropped along with its mark.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	lowered := cases.Lower(language.Und).String(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
