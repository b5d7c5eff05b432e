package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// turkishFold maps the Turkish-specific letters to their ASCII base form.
// Both the dotless ı and the dotted İ fold to plain "i"; case information
// is discarded because all downstream matching is case-insensitive.
var turkishFold = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// NormalizeToASCII folds Turkish letters to their ASCII base form and
// lower-cases the result. Non-letter runes (digits, punctuation, arrow
// glyphs) pass through unchanged so separator cues survive for the
// extractors. Accented letters outside the Turkish set (â, é from
// copy-pasted text) go through the diacritic stripper, with unidecode as
// the final fallback for anything still non-ASCII.
func NormalizeToASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := turkishFold[r]; ok {
			b.WriteRune(folded)
			continue
		}
		if r < 128 {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if unicode.IsLetter(r) {
			stripped := StripDiacritics(string(r))
			if stripped != "" && stripped[0] < 128 {
				b.WriteString(strings.ToLower(stripped))
				continue
			}
			b.WriteString(strings.ToLower(unidecode.Unidecode(string(r))))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// turkishFoldCase maps the Turkish-specific letters to ASCII keeping
// letter case.
var turkishFoldCase = map[rune]rune{
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',
}

// FoldTurkish folds Turkish letters to ASCII without touching case.
// Contact-name heuristics rely on capitalization, so they scan this form
// instead of the lower-cased one.
func FoldTurkish(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := turkishFoldCase[r]; ok {
			b.WriteRune(folded)
			continue
		}
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		if unicode.IsLetter(r) {
			stripped := StripDiacritics(string(r))
			if stripped != "" && stripped[0] < 128 {
				b.WriteString(stripped)
				continue
			}
			b.WriteString(unidecode.Unidecode(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLocationName folds a place-name mention to its lookup form:
// ASCII fold, decoration trim, and apostrophe-attached case endings cut
// at the apostrophe ("İstanbul'dan" -> "istanbul"). Suffixes written
// without an apostrophe are left alone here; resolving those needs the
// gazetteer and happens in the location extractor.
func NormalizeLocationName(name string) string {
	folded := NormalizeToASCII(strings.TrimSpace(name))
	folded = strings.Trim(folded, "*•.,:;!- ")
	if i := strings.LastIndexAny(folded, "'’"); i > 0 {
		folded = folded[:i]
	}
	return strings.TrimSpace(folded)
}
