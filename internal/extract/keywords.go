package extract

import (
	"regexp"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/normalizer"
)

// KeywordExtractor resolves cargo type, urgency and load type from
// keyword tables. Absence is the normal case for all three.
type KeywordExtractor struct {
	cargoTable     []patternRow
	loadTable      []patternRow
	urgencyPattern *regexp.Regexp
}

// NewKeywordExtractor creates a keyword extractor with its tables.
func NewKeywordExtractor() *KeywordExtractor {
	ke := &KeywordExtractor{}
	ke.initializePatterns()
	return ke
}

func (ke *KeywordExtractor) initializePatterns() {
	// First matching row wins; more specific categories sit above the
	// broader ones they overlap with.
	ke.cargoTable = []patternRow{
		{"PALET", regexp.MustCompile(`\bpalet(?:li)?\b`)},
		{"DEMIR", regexp.MustCompile(`\bdemir\b|\bcelik\b|\bsac\b|\bprofil\b|\brulo\b`)},
		{"TEKSTIL", regexp.MustCompile(`\btekstil\b|\bkumas\b|\bkonfeksiyon\b|\biplik\b`)},
		{"GIDA", regexp.MustCompile(`\bgida\b|\bsebze\b|\bmeyve\b|\bnarenciye\b|\bpatates\b|\bsogan\b|\bkarpuz\b|\bdomates\b`)},
		{"MAKINE", regexp.MustCompile(`\bmakine\b|\bmakina\b`)},
		{"MOBILYA", regexp.MustCompile(`\bmobilya\b|\besya\b`)},
		{"INSAAT", regexp.MustCompile(`\binsaat\b|\bcimento\b|\btugla\b|\bmicir\b|\bbeton\b`)},
		{"MERMER", regexp.MustCompile(`\bmermer\b|\bgranit\b|\btraverten\b`)},
		{"KERESTE", regexp.MustCompile(`\bkereste\b|\btomruk\b|\bahsap\b`)},
		{"KOMUR", regexp.MustCompile(`\bkomur\b`)},
		{"HUBUBAT", regexp.MustCompile(`\bhububat\b|\bbugday\b|\barpa\b|\bmisir\b|\bun\b|\byem\b|\bseker\b`)},
		{"KIMYASAL", regexp.MustCompile(`\bkimyasal\b|\bboya\b|\bgubre\b`)},
		{"AMBALAJ", regexp.MustCompile(`\bambalaj\b|\bkarton\b|\bkagit\b|\bbobin\b`)},
		{"CAM", regexp.MustCompile(`\bcam\b|\bsise\b`)},
		{"PLASTIK", regexp.MustCompile(`\bplastik\b|\bgranul\b`)},
	}

	ke.loadTable = []patternRow{
		{models.LoadTypeParsiyel, regexp.MustCompile(`\bparsiyel\b|\bkismi\b|\bgrupaj\b`)},
		{models.LoadTypeKomple, regexp.MustCompile(`\bkomple\b|\btam yuk\b|\bfull\b`)},
	}

	ke.urgencyPattern = regexp.MustCompile(`\bacil\b|\bhemen\b|\bbugun\b|\byarin\b|\bacele\b|\bivedi\b`)
}

// ExtractCargoType returns the first matching cargo category, or "".
func (ke *KeywordExtractor) ExtractCargoType(text string) string {
	normalized := normalizer.NormalizeToASCII(text)
	for _, row := range ke.cargoTable {
		if row.re.MatchString(normalized) {
			return row.tag
		}
	}
	return ""
}

// ExtractLoadType returns KOMPLE or PARSIYEL, or "" when neither is
// named.
func (ke *KeywordExtractor) ExtractLoadType(text string) string {
	normalized := normalizer.NormalizeToASCII(text)
	for _, row := range ke.loadTable {
		if row.re.MatchString(normalized) {
			return row.tag
		}
	}
	return ""
}

// ExtractUrgency returns the urgency flag plus the indicator words that
// triggered it, deduplicated in text order.
func (ke *KeywordExtractor) ExtractUrgency(text string) (bool, []string) {
	normalized := normalizer.NormalizeToASCII(text)
	matches := ke.urgencyPattern.FindAllString(normalized, -1)
	if len(matches) == 0 {
		return false, nil
	}

	seen := make(map[string]struct{}, len(matches))
	words := make([]string, 0, len(matches))
	for _, w := range matches {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return true, words
}
