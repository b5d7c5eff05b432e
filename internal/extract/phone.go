package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/normalizer"
)

// phonePattern is one anchored layout a Turkish mobile number can take.
type phonePattern struct {
	name string
	re   *regexp.Regexp
}

// PhoneExtractor finds Turkish mobile numbers in any of six layouts and
// normalizes them to the 11-character 05XXXXXXXXX form.
type PhoneExtractor struct {
	patterns []phonePattern
}

// NewPhoneExtractor creates a phone extractor with its pattern table.
func NewPhoneExtractor() *PhoneExtractor {
	pe := &PhoneExtractor{}
	pe.initializePatterns()
	return pe
}

// initializePatterns compiles the six layouts. Table order is the
// overlap-resolution priority: a match is dropped when its span overlaps
// a match already accepted by an earlier pattern (or an earlier position
// of the same pattern).
func (pe *PhoneExtractor) initializePatterns() {
	pe.patterns = []phonePattern{
		// +90 532 123 45 67 / +905321234567 / 00905321234567
		{"intl_continuous", regexp.MustCompile(`(?:\+90|0090|90)0?5\d{9}`)},
		// 05321234567
		{"local_continuous", regexp.MustCompile(`05\d{9}`)},
		// +90 532 123 45 67 with grouped digits
		{"intl_grouped", regexp.MustCompile(`\+?90[ .-]*\(?0?5\d{2}\)?(?:[ .-]+\d{3})(?:[ .-]+\d{2})(?:[ .-]+\d{2})`)},
		// 0532 123 45 67 / 0 541 281 09 67 / 0.532.123.45.67 / (0532) 123-45-67
		{"local_grouped", regexp.MustCompile(`\(?0[ .-]*5\d{2}\)?(?:[ .-]+\d{3})(?:[ .-]+\d{2})(?:[ .-]+\d{2})`)},
		// 532 123 45 67 / 5321234567 without any prefix
		{"bare", regexp.MustCompile(`5\d{2}(?:[ .-]+\d{3})(?:[ .-]+\d{2})(?:[ .-]+\d{2})|5\d{9}`)},
		// 0532 xxx xx 67 with masked digit groups
		{"masked", regexp.MustCompile(`0?5[\dx]{2}(?:[ .-]*[\dx]{3})(?:[ .-]*[\dx]{2})(?:[ .-]*[\dx]{2})`)},
	}
}

type phoneSpan struct {
	start, end int
	text       string
}

// Extract returns every distinct phone number in the text. Each number
// is reported once even when several patterns match it.
func (pe *PhoneExtractor) Extract(text string) []models.ParsedPhone {
	normalized := normalizer.NormalizeToASCII(text)

	var accepted []phoneSpan
	for _, pat := range pe.patterns {
		for _, loc := range pat.re.FindAllStringIndex(normalized, -1) {
			span := phoneSpan{start: loc[0], end: loc[1], text: normalized[loc[0]:loc[1]]}
			if !boundaryClean(normalized, span.start, span.end) {
				continue
			}
			if overlapsAny(accepted, span) {
				continue
			}
			accepted = append(accepted, span)
		}
	}

	// Report in text order regardless of which pattern found what.
	sort.Slice(accepted, func(i, j int) bool { return accepted[i].start < accepted[j].start })

	var phones []models.ParsedPhone
	for _, span := range accepted {
		number, ok := normalizePhoneDigits(span.text)
		if !ok {
			continue
		}
		phones = append(phones, models.ParsedPhone{
			Number:       number,
			OriginalText: strings.TrimSpace(span.text),
			IsMasked:     strings.Contains(number, "x"),
		})
	}
	return phones
}

// boundaryClean rejects matches glued to surrounding digits, so a
// substring of a longer digit run is never reported as a phone.
func boundaryClean(src string, start, end int) bool {
	if start > 0 {
		c := src[start-1]
		if (c >= '0' && c <= '9') || c == 'x' {
			return false
		}
	}
	if end < len(src) {
		c := src[end]
		if (c >= '0' && c <= '9') || c == 'x' {
			return false
		}
	}
	return true
}

func overlapsAny(accepted []phoneSpan, span phoneSpan) bool {
	for _, a := range accepted {
		if span.start < a.end && a.start < span.end {
			return true
		}
	}
	return false
}

// normalizePhoneDigits reduces a raw match to 05XXXXXXXXX: separators
// out, country code stripped, leading zero restored. Masked digits stay
// as lower-case x.
func normalizePhoneDigits(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == 'x' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "0090"):
		digits = digits[4:]
	case strings.HasPrefix(digits, "90") && len(digits) >= 12:
		digits = digits[2:]
	}
	if len(digits) == 10 && digits[0] == '5' {
		digits = "0" + digits
	}

	if len(digits) != 11 || digits[0] != '0' || digits[1] != '5' {
		return "", false
	}
	return digits, true
}
