// Package extract holds the independent field extractors. Each one is a
// pure function over the raw message text: it normalizes internally,
// returns zero or more typed matches and never fails. Extractors do not
// read each other's output.
package extract

import (
	"strconv"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
)

// Per-strategy location confidence. The values only express how the
// match was made; they never depend on extraction order.
const (
	confidenceProvinceExact     = 0.9
	confidenceDistrict          = 0.8
	confidenceFuzzy             = 0.7
	confidenceAmbiguousDistrict = 0.6
	confidencePlateCode         = 0.5
)

// unitNouns are measure words. A 1-2 digit number directly before one of
// these is a quantity ("10 teker", "25 ton"), never a plate code.
var unitNouns = map[string]struct{}{
	"teker":    {},
	"ton":      {},
	"tonluk":   {},
	"palet":    {},
	"paletlik": {},
	"adet":     {},
	"kg":       {},
	"metre":    {},
	"mt":       {},
	"lastik":   {},
	"parca":    {},
}

// minBareDistrictLen guards very short district names (Can, Mut, Bor):
// below this length a bare token only counts when it carried a
// directional suffix.
const minBareDistrictLen = 4

// LocatedMention is one location match enriched with the positional and
// directional context the route assembler consumes. Start and End are
// byte offsets of the matched token in the ASCII-normalized text.
type LocatedMention struct {
	Location          models.ParsedLocation
	HasOriginCue      bool
	HasDestinationCue bool
	TokenIndex        int
	Line              int
	Start             int
	End               int
}

// LocationExtractor resolves textual mentions against the gazetteer.
type LocationExtractor struct {
	gaz *gazetteer.Gazetteer
}

// NewLocationExtractor creates a location extractor over the given
// gazetteer.
func NewLocationExtractor(gaz *gazetteer.Gazetteer) *LocationExtractor {
	return &LocationExtractor{gaz: gaz}
}

// Extract returns every location mention in text order. The same place
// may appear more than once; ambiguous district names carry all their
// candidate provinces instead of a guessed winner.
func (le *LocationExtractor) Extract(text string) []models.ParsedLocation {
	mentions := le.ExtractMentions(text)
	locations := make([]models.ParsedLocation, 0, len(mentions))
	for _, m := range mentions {
		locations = append(locations, m.Location)
	}
	return locations
}

// ExtractMentions is Extract plus directional cues, token order and line
// numbers.
func (le *LocationExtractor) ExtractMentions(text string) []LocatedMention {
	normalized := normalizer.NormalizeToASCII(text)
	tokens := tokenize(normalized)

	var mentions []LocatedMention
	for i, tok := range tokens {
		var m *LocatedMention
		if tok.kind == tokenNumber {
			m = le.matchPlateCode(normalized, tokens, i)
		} else {
			m = le.matchWord(tok.text)
		}
		if m == nil {
			continue
		}
		m.TokenIndex = i
		m.Line = tok.line
		m.Start = tok.start
		m.End = tok.end
		mentions = append(mentions, *m)
	}
	return mentions
}

// matchWord resolves one word token. Matching order:
//
//	1. apostrophe-split forms ("İzmir'den") with the tail classified as
//	   a directional suffix
//	2. the whole token against province and district names
//	3. every valid suffix strip, longest suffix first ("bafradan")
//	4. a bare dative strip for y-final stems ("hataya" -> hatay),
//	   accepted only when the stem is a known place
//	5. fuzzy province matching for likely misspellings
func (le *LocationExtractor) matchWord(word string) *LocatedMention {
	if strings.ContainsAny(word, "'’") {
		res := normalizer.StripSuffix(word)
		return le.lookupExact(res.Stem, word, res.IsOrigin, res.IsDestination)
	}

	if m := le.lookupExact(word, word, false, false); m != nil {
		return m
	}

	for _, cand := range normalizer.SuffixCandidates(word) {
		if m := le.lookupExact(cand.Stem, word, cand.IsOrigin, cand.IsDestination); m != nil {
			return m
		}
	}

	if n := len(word); n > minBareDistrictLen && (word[n-1] == 'a' || word[n-1] == 'e') && word[n-2] == 'y' {
		if m := le.lookupExact(word[:n-1], word, false, true); m != nil {
			return m
		}
	}

	if p, _, ok := le.gaz.FuzzyProvince(word); ok {
		return &LocatedMention{Location: models.ParsedLocation{
			OriginalText: word,
			ProvinceName: p.Name,
			ProvinceCode: p.Code,
			Confidence:   confidenceFuzzy,
		}}
	}
	return nil
}

// lookupExact resolves a candidate stem against provinces first, then
// districts.
func (le *LocationExtractor) lookupExact(name, original string, isOrigin, isDestination bool) *LocatedMention {
	if p, ok := le.gaz.ProvinceByName(name); ok {
		return &LocatedMention{
			Location: models.ParsedLocation{
				OriginalText: original,
				ProvinceName: p.Name,
				ProvinceCode: p.Code,
				Confidence:   confidenceProvinceExact,
			},
			HasOriginCue:      isOrigin,
			HasDestinationCue: isDestination,
		}
	}

	districts := le.gaz.DistrictsByName(name)
	if len(districts) == 0 {
		return nil
	}
	if len([]rune(name)) < minBareDistrictLen && !isOrigin && !isDestination {
		return nil
	}

	if len(districts) == 1 {
		d := districts[0]
		p, ok := le.gaz.ProvinceByCode(d.ProvinceCode)
		if !ok {
			return nil
		}
		return &LocatedMention{
			Location: models.ParsedLocation{
				OriginalText: original,
				ProvinceName: p.Name,
				ProvinceCode: p.Code,
				DistrictName: d.Name,
				IsDistrict:   true,
				Confidence:   confidenceDistrict,
			},
			HasOriginCue:      isOrigin,
			HasDestinationCue: isDestination,
		}
	}

	// Ambiguous name: list every candidate province, pick none.
	refs := make([]models.ProvinceRef, 0, len(districts))
	for _, d := range districts {
		if p, ok := le.gaz.ProvinceByCode(d.ProvinceCode); ok {
			refs = append(refs, models.ProvinceRef{ProvinceName: p.Name, ProvinceCode: p.Code})
		}
	}
	return &LocatedMention{
		Location: models.ParsedLocation{
			OriginalText:      original,
			DistrictName:      districts[0].Name,
			IsDistrict:        true,
			Confidence:        confidenceAmbiguousDistrict,
			IsAmbiguous:       true,
			PossibleProvinces: refs,
		},
		HasOriginCue:      isOrigin,
		HasDestinationCue: isDestination,
	}
}

// matchPlateCode promotes a standalone 1-2 digit token to its province
// only when nothing marks it as part of a phone number, a quantity or a
// list marker.
func (le *LocationExtractor) matchPlateCode(src string, tokens []token, i int) *LocatedMention {
	tok := tokens[i]
	if len(tok.text) > 2 {
		return nil
	}
	code, err := strconv.Atoi(tok.text)
	if err != nil {
		return nil
	}
	p, ok := le.gaz.ProvinceByCode(code)
	if !ok {
		return nil
	}

	if inDigitRun(src, tokens, i) {
		return nil
	}
	if tok.end < len(src) && strings.IndexByte(".-)", src[tok.end]) >= 0 {
		return nil
	}
	if i+1 < len(tokens) && tokens[i+1].kind == tokenWord && tokens[i+1].line == tok.line {
		if _, unit := unitNouns[tokens[i+1].text]; unit {
			return nil
		}
	}

	return &LocatedMention{Location: models.ParsedLocation{
		OriginalText: tok.text,
		ProvinceName: p.Name,
		ProvinceCode: p.Code,
		Confidence:   confidencePlateCode,
	}}
}

// ResolveAmbiguity settles ambiguous district mentions when one of their
// candidate provinces is explicitly named elsewhere in the same message
// ("42 Ereğli yükü" pins Ereğli to Konya). Mentions with no such anchor
// keep their full candidate list.
func ResolveAmbiguity(mentions []LocatedMention) []LocatedMention {
	explicit := make(map[int]string)
	for _, m := range mentions {
		if !m.Location.IsAmbiguous && !m.Location.IsDistrict && m.Location.ProvinceCode != 0 {
			explicit[m.Location.ProvinceCode] = m.Location.ProvinceName
		}
	}
	if len(explicit) == 0 {
		return mentions
	}

	for i := range mentions {
		if !mentions[i].Location.IsAmbiguous {
			continue
		}
		for _, ref := range mentions[i].Location.PossibleProvinces {
			if name, ok := explicit[ref.ProvinceCode]; ok {
				mentions[i].Location.ProvinceName = name
				mentions[i].Location.ProvinceCode = ref.ProvinceCode
				mentions[i].Location.IsAmbiguous = false
				mentions[i].Location.Confidence = confidenceDistrict
				mentions[i].Location.PossibleProvinces = nil
				break
			}
		}
	}
	return mentions
}
