package extract

import (
	"regexp"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
)

// contactStopwords are tokens that precede phone numbers without being
// names: contact-intro words and freight vocabulary.
var contactStopwords = map[string]struct{}{
	"tel": {}, "telefon": {}, "gsm": {}, "cep": {}, "no": {}, "numara": {},
	"irtibat": {}, "iletisim": {}, "whatsapp": {}, "wp": {}, "ara": {},
	"arayin": {}, "bilgi": {}, "detay": {}, "fiyat": {}, "ucret": {},
	"tir": {}, "kamyon": {}, "kamyonet": {}, "cekici": {}, "dorse": {},
	"arac": {}, "yuk": {}, "yukleme": {}, "nakliye": {}, "nakliyat": {},
	"lojistik": {}, "tasimacilik": {}, "acil": {}, "musait": {},
	"parsiyel": {}, "komple": {}, "ton": {}, "teker": {}, "palet": {},
}

// ContactExtractor pulls a best-effort contact name out of the message.
// It anchors on Turkish honorifics first, then on a name token standing
// right before a phone number. The curated first-name list upgrades a
// guess to a known name; an unknown capitalized token next to a phone is
// still accepted.
type ContactExtractor struct {
	gaz              *gazetteer.Gazetteer
	honorificPattern *regexp.Regexp
	phonePattern     *regexp.Regexp
	nameBefore       *regexp.Regexp
}

// NewContactExtractor creates a contact extractor over the given
// gazetteer.
func NewContactExtractor(gaz *gazetteer.Gazetteer) *ContactExtractor {
	ce := &ContactExtractor{gaz: gaz}
	ce.initializePatterns()
	return ce
}

func (ce *ContactExtractor) initializePatterns() {
	ce.honorificPattern = regexp.MustCompile(`(?i)\b([a-z]+)[ \t]+(bey|hanim|abi|abla)\b`)
	ce.phonePattern = regexp.MustCompile(`(?:\+?90[ .-]*)?\(?0?5[\dxX]{2}\)?(?:[ .-]*[\dxX]{2,3}){3}`)
	ce.nameBefore = regexp.MustCompile(`([A-Za-z]{2,})[ \t:.\-]{0,3}$`)
}

// Extract returns the contact name, or nil when no plausible name is
// found. Matching is case-aware: the text is folded to ASCII with case
// preserved so capitalization still signals a name.
func (ce *ContactExtractor) Extract(text string) *models.ParsedContact {
	folded := normalizer.FoldTurkish(text)

	// 1. Honorific anchor: "Mehmet bey", "Ayşe hanım"
	for _, m := range ce.honorificPattern.FindAllStringSubmatchIndex(folded, -1) {
		name := folded[m[2]:m[3]]
		if !ce.acceptableName(name) {
			continue
		}
		known := ce.gaz.IsFirstName(name)
		if !known && !startsUpper(name) {
			continue
		}
		return &models.ParsedContact{
			Name:         titleCase(name),
			Honorific:    strings.ToLower(folded[m[4]:m[5]]),
			IsKnownName:  known,
			OriginalText: strings.TrimSpace(folded[m[0]:m[1]]),
		}
	}

	// 2. Name token standing right before the first phone number
	loc := ce.phonePattern.FindStringIndex(folded)
	if loc == nil {
		return nil
	}
	m := ce.nameBefore.FindStringSubmatch(folded[:loc[0]])
	if m == nil {
		return nil
	}
	name := m[1]
	if !ce.acceptableName(name) {
		return nil
	}
	known := ce.gaz.IsFirstName(name)
	if !known && !startsUpper(name) {
		return nil
	}
	return &models.ParsedContact{
		Name:         titleCase(name),
		IsKnownName:  known,
		OriginalText: name,
	}
}

// acceptableName rejects stopwords and tokens that are really places.
func (ce *ContactExtractor) acceptableName(name string) bool {
	lower := strings.ToLower(name)
	if _, stop := contactStopwords[lower]; stop {
		return false
	}
	if _, isProvince := ce.gaz.ProvinceByName(lower); isProvince {
		return false
	}
	if len(ce.gaz.DistrictsByName(lower)) > 0 {
		return false
	}
	return true
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
