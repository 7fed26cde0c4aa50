// Package text holds the display helpers used when rendering generated
// attributes for people: case folding, proper-casing labels, and natural
// language joins.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns a case-folded form of s for case-insensitive comparisons.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ProperCase capitalizes every letter that follows a non-letter and lowers
// the rest, e.g. "a test-string (with fawns)" becomes
// "A Test-String (With Fawns)". Small words get no special treatment.
func ProperCase(s string) string {
	// Casers carry state, so each call gets its own.
	upper := cases.Upper(language.Und)
	var b strings.Builder
	capitalizeNext := true
	for _, r := range cases.Lower(language.Und).String(s) {
		if capitalizeNext && unicode.IsLetter(r) {
			b.WriteString(upper.String(string(r)))
			capitalizeNext = false
			continue
		}
		b.WriteRune(r)
		capitalizeNext = !unicode.IsLetter(r)
	}
	return b.String()
}

// Humanize splits a CamelCase identifier into lower-case words:
// "SunsetOrange" becomes "sunset orange".
func Humanize(ident string) string {
	var b strings.Builder
	for i, r := range ident {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NaturalJoin joins items as "A, B, C and D".
func NaturalJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
