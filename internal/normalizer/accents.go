package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks after NFD decomposition. This
// covers the circumflexed vowels (â, î, û) that survive the Turkish fold
// table, but not the dotless ı, which has no decomposition and is handled
// by the fold table itself.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn reports whether the rune is a combining diacritic mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// RemoveAccentsAndLowercase strips combining marks and lower-cases.
func RemoveAccentsAndLowercase(s string) string {
	return strings.ToLower(StripDiacritics(s))
}
