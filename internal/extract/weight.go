package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/normalizer"
)

// Plausible cargo weight bounds. Figures outside these are treated as
// something else (axle counts, prices, phone fragments).
const (
	maxTons = 100.0
	minKg   = 100.0
	maxKg   = 100000.0
)

// WeightExtractor finds a cargo tonnage or kilogram figure. A number
// only counts as weight when a unit word follows it: bare decimals like
// "13.60" are trailer lengths, not tonnage, and digit runs belonging to
// phone numbers must never contribute a weight.
type WeightExtractor struct {
	tonPattern  *regexp.Regexp
	kgPattern   *regexp.Regexp
	digitBefore *regexp.Regexp
}

// NewWeightExtractor creates a weight extractor with its patterns.
func NewWeightExtractor() *WeightExtractor {
	we := &WeightExtractor{}
	we.initializePatterns()
	return we
}

func (we *WeightExtractor) initializePatterns() {
	// "25 ton", "3,5 tonluk", "25-26 ton", "12 tondur"
	we.tonPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:-\s*\d+(?:[.,]\d+)?\s*)?(?:ton(?:luk|lar|u|dur)?|tn)\b`)
	// "500 kg", "12.500 kiloluk"
	we.kgPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kg|kilo(?:luk)?)\b`)
	// a digit group with a short separator right before the match means
	// the figure continues a phone-shaped run
	we.digitBefore = regexp.MustCompile(`\d[ .()-]{0,3}$`)
}

// Extract returns the first plausible weight figure, or nil.
func (we *WeightExtractor) Extract(text string) *models.ParsedWeight {
	normalized := normalizer.NormalizeToASCII(text)

	if w := we.scan(normalized, we.tonPattern, models.WeightUnitTon); w != nil {
		return w
	}
	return we.scan(normalized, we.kgPattern, models.WeightUnitKg)
}

func (we *WeightExtractor) scan(src string, re *regexp.Regexp, unit string) *models.ParsedWeight {
	for _, loc := range re.FindAllStringSubmatchIndex(src, -1) {
		start := loc[0]
		if we.digitBefore.MatchString(src[:start]) {
			continue
		}

		value, err := parseTurkishNumber(src[loc[2]:loc[3]])
		if err != nil {
			continue
		}

		tons := value
		if unit == models.WeightUnitKg {
			if value < minKg || value > maxKg {
				continue
			}
			tons = value / 1000
		} else if value <= 0 || value > maxTons {
			continue
		}

		return &models.ParsedWeight{
			Value:        value,
			Unit:         unit,
			Tons:         tons,
			OriginalText: strings.TrimSpace(src[loc[0]:loc[1]]),
		}
	}
	return nil
}

// thousandsPattern recognizes the Turkish thousands notation: a dot
// followed by exactly three digits ("12.500" is twelve and a half
// thousand, not twelve point five).
var thousandsPattern = regexp.MustCompile(`^\d{1,3}\.\d{3}$`)

func parseTurkishNumber(s string) (float64, error) {
	if thousandsPattern.MatchString(s) {
		s = strings.Replace(s, ".", "", 1)
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
