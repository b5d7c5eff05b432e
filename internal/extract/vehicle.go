package extract

import (
	"regexp"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/normalizer"
)

// patternRow is one (pattern, tag) row of an ordered match table. The
// vehicle, body, cargo and load-type tables all share this shape.
type patternRow struct {
	tag string
	re  *regexp.Regexp
}

// VehicleExtractor matches vehicle and body types against ordered
// tables. The first matching row of each table wins; there is no scoring
// across candidates.
type VehicleExtractor struct {
	vehicleTable []patternRow
	bodyTable    []patternRow
}

// NewVehicleExtractor creates a vehicle extractor with its match tables.
func NewVehicleExtractor() *VehicleExtractor {
	ve := &VehicleExtractor{}
	ve.initializePatterns()
	return ve
}

func (ve *VehicleExtractor) initializePatterns() {
	// Row order is the explicit priority. KAMYONET sits above KAMYON so
	// the longer word is never shadowed by its prefix.
	ve.vehicleTable = []patternRow{
		{models.VehicleTIR, regexp.MustCompile(`\b(?:tir|cekici)\b`)},
		{models.VehicleKamyonet, regexp.MustCompile(`\bkamyonet\b`)},
		{models.VehicleKamyon, regexp.MustCompile(`\bkamyon\b|\b(?:10|on) teker\b|\bkirkayak\b`)},
		{models.VehiclePanelvan, regexp.MustCompile(`\bpanelvan\b|\bpanel van\b`)},
		{models.VehiclePickup, regexp.MustCompile(`\bpikap\b|\bpickup\b`)},
	}

	// Refrigerated variants come first so IsRefrigerated can be derived
	// from the body tag alone. Bare "acik" sits below the other bodies
	// because it is the loosest word of the four.
	ve.bodyTable = []patternRow{
		{models.BodyFrigo, regexp.MustCompile(`\bfrigo(?:rifik|lu)?\b|\bsogutuculu\b|\bsogutmali\b`)},
		{models.BodyTenteli, regexp.MustCompile(`\btente(?:li)?\b`)},
		{models.BodyKapali, regexp.MustCompile(`\bkapali\b`)},
		{models.BodyDamperli, regexp.MustCompile(`\bdamper(?:li)?\b`)},
		{models.BodyAcik, regexp.MustCompile(`\bacik\b`)},
		{models.BodyLowbed, regexp.MustCompile(`\blowbed\b|\blowboy\b`)},
	}
}

// Extract returns the matched vehicle and/or body type, or nil when the
// text names neither.
func (ve *VehicleExtractor) Extract(text string) *models.ParsedVehicle {
	normalized := normalizer.NormalizeToASCII(text)

	var vehicle *models.ParsedVehicle
	for _, row := range ve.vehicleTable {
		if m := row.re.FindString(normalized); m != "" {
			vehicle = &models.ParsedVehicle{Type: row.tag, OriginalText: m}
			break
		}
	}

	for _, row := range ve.bodyTable {
		if m := row.re.FindString(normalized); m != "" {
			if vehicle == nil {
				vehicle = &models.ParsedVehicle{OriginalText: m}
			}
			vehicle.BodyType = row.tag
			vehicle.IsRefrigerated = row.tag == models.BodyFrigo
			break
		}
	}

	return vehicle
}
