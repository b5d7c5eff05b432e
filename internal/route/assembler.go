// Package route assembles origin/destination pairs from located
// mentions. It owns the primary-route decision and the multi-route
// layout detectors.
package route

import (
	"regexp"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/extract"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
)

// markerGap is the widest byte gap between a departure marker and the
// place it points at ("cikis: corlu" has a two-byte gap).
const markerGap = 3

// pairDelimiters are the separators that turn two places on one line
// into an explicit route. The arrow runes survive normalization as-is.
var pairDelimiters = []string{"➡", "→", "⇒", "⇨", "▶", "»", ">", "-", "=>"}

// Assembler turns location mentions into routes.
type Assembler struct {
	locations *extract.LocationExtractor
	vehicles  *extract.VehicleExtractor
	norm      *normalizer.Normalizer

	departurePattern  *regexp.Regexp
	headerPattern     *regexp.Regexp
	listMarkerPattern *regexp.Regexp
}

// NewAssembler creates a route assembler over the given gazetteer.
func NewAssembler(gaz *gazetteer.Gazetteer) *Assembler {
	a := &Assembler{
		locations: extract.NewLocationExtractor(gaz),
		vehicles:  extract.NewVehicleExtractor(),
		norm:      normalizer.New(),
	}
	a.initializePatterns()
	return a
}

func (a *Assembler) initializePatterns() {
	// "cikis", "cikisli", "cikis:" after normalization
	a.departurePattern = regexp.MustCompile(`\bcikis(?:li)?\b`)
	// "corlu yukler", "corlu yukleri" header lines
	a.headerPattern = regexp.MustCompile(`\byuk(?:ler|leri|lerimiz)\b`)
	// "1-", "2.", "3)" route list markers
	a.listMarkerPattern = regexp.MustCompile(`^\s*\d{1,2}[-.)]`)
}

// DetermineOriginDestination picks the primary route out of the given
// mentions. rawText must be the exact text the mentions were extracted
// from. Priority: directional suffixes and the departure marker first,
// then mention order (first place is origin, last different place is
// destination), and a single cue-less place is origin only.
func (a *Assembler) DetermineOriginDestination(mentions []extract.LocatedMention, rawText string) (*models.ParsedLocation, *models.ParsedLocation) {
	if len(mentions) == 0 {
		return nil, nil
	}

	markers := a.departurePattern.FindAllStringIndex(normalizer.NormalizeToASCII(rawText), -1)

	var origin, destination *extract.LocatedMention
	for i := range mentions {
		m := &mentions[i]
		if origin == nil && (m.HasOriginCue || adjacentToMarker(markers, m)) {
			origin = m
		}
	}
	for i := range mentions {
		m := &mentions[i]
		if m.HasDestinationCue && (origin == nil || m.TokenIndex != origin.TokenIndex) {
			destination = m
			break
		}
	}

	if origin == nil && destination == nil {
		origin = &mentions[0]
		if last := &mentions[len(mentions)-1]; differentPlace(origin, last) {
			destination = last
		}
	} else if origin != nil && destination == nil {
		for i := len(mentions) - 1; i >= 0; i-- {
			if m := &mentions[i]; m.TokenIndex != origin.TokenIndex && differentPlace(origin, m) {
				destination = m
				break
			}
		}
	} else if origin == nil && destination != nil {
		for i := range mentions {
			if m := &mentions[i]; m.TokenIndex != destination.TokenIndex && differentPlace(destination, m) {
				origin = m
				break
			}
		}
	}

	return locationCopy(origin), locationCopy(destination)
}

// ExtractAllRoutes recognizes the three multi-route layouts in a fixed
// priority order, stopping at the first detector that yields more than
// one route so a message matching two layouts is never double-counted.
// A message with exactly one recognized route line still reports that
// route; anything else falls back to the primary origin/destination.
func (a *Assembler) ExtractAllRoutes(text string) []models.ExtractedRoute {
	normalized := a.norm.NormalizeMessage(text)
	if normalized == "" {
		return nil
	}

	detectors := []func(string) []models.ExtractedRoute{
		a.detectDelimitedPairs,
		a.detectSharedOriginHeader,
		a.detectDepartureList,
	}

	var single []models.ExtractedRoute
	for _, detect := range detectors {
		routes := detect(normalized)
		if len(routes) > 1 {
			return routes
		}
		if len(routes) == 1 && single == nil {
			single = routes
		}
	}
	if single != nil {
		return single
	}
	return a.fallbackPrimary(normalized)
}

// detectDelimitedPairs finds lines shaped "KAYSERI > ISTANBUL TIR": two
// different places with an arrow or dash between them, or a numbered
// route line. Every qualifying line yields one route.
func (a *Assembler) detectDelimitedPairs(normalized string) []models.ExtractedRoute {
	var routes []models.ExtractedRoute
	for _, line := range a.norm.Lines(normalized) {
		mentions := extract.ResolveAmbiguity(a.locations.ExtractMentions(line))
		if len(mentions) < 2 {
			continue
		}
		first, last := &mentions[0], &mentions[len(mentions)-1]
		if first.Location.ProvinceName == "" || last.Location.ProvinceName == "" {
			continue
		}
		if first.Location.ProvinceCode == last.Location.ProvinceCode {
			continue
		}

		gap := line[first.End:last.Start]
		if !containsPairDelimiter(gap) && !a.listMarkerPattern.MatchString(line) {
			continue
		}
		routes = append(routes, a.buildRoute(first, last, line))
	}
	return routes
}

// detectSharedOriginHeader finds the "*ÇORLU YÜKLER*" layout: a header
// line naming one place next to a loads keyword, followed by lines that
// each name a destination. Every destination line becomes a route with
// the header's province as origin.
func (a *Assembler) detectSharedOriginHeader(normalized string) []models.ExtractedRoute {
	lines := a.norm.Lines(normalized)
	if len(lines) < 2 {
		return nil
	}

	header := lines[0]
	if !a.headerPattern.MatchString(header) {
		return nil
	}
	headerMentions := a.locations.ExtractMentions(header)
	if len(headerMentions) != 1 || headerMentions[0].Location.ProvinceName == "" {
		return nil
	}
	origin := &headerMentions[0]

	var routes []models.ExtractedRoute
	for _, line := range lines[1:] {
		mentions := extract.ResolveAmbiguity(a.locations.ExtractMentions(line))
		if len(mentions) == 0 {
			continue
		}
		dest := &mentions[0]
		if dest.Location.ProvinceName == "" || dest.Location.ProvinceCode == origin.Location.ProvinceCode {
			continue
		}
		routes = append(routes, a.buildRoute(origin, dest, line))
	}
	return routes
}

// detectDepartureList finds the "(Çıkış: CITY)" layout: a departure
// marker naming the shared origin, then destination lines introduced by
// a pin emoji or plain text.
func (a *Assembler) detectDepartureList(normalized string) []models.ExtractedRoute {
	marker := a.departurePattern.FindStringIndex(normalized)
	if marker == nil {
		return nil
	}
	markerLine := strings.Count(normalized[:marker[0]], "\n")

	mentions := a.locations.ExtractMentions(normalized)
	var origin *extract.LocatedMention
	for i := range mentions {
		if adjacentToMarker([][]int{marker}, &mentions[i]) {
			origin = &mentions[i]
			break
		}
	}
	if origin == nil || origin.Location.ProvinceName == "" {
		return nil
	}

	var routes []models.ExtractedRoute
	lines := strings.Split(normalized, "\n")
	for i := range mentions {
		m := &mentions[i]
		if m.Line <= markerLine || m.TokenIndex == origin.TokenIndex {
			continue
		}
		if m.Location.ProvinceName == "" || m.Location.ProvinceCode == origin.Location.ProvinceCode {
			continue
		}
		routes = append(routes, a.buildRoute(origin, m, lines[m.Line]))
	}
	return routes
}

// fallbackPrimary wraps the primary origin/destination pair as a single
// route when both ends are present.
func (a *Assembler) fallbackPrimary(normalized string) []models.ExtractedRoute {
	mentions := extract.ResolveAmbiguity(a.locations.ExtractMentions(normalized))
	origin, destination := a.DetermineOriginDestination(mentions, normalized)
	if origin == nil || destination == nil {
		return nil
	}
	if origin.ProvinceName == "" || destination.ProvinceName == "" {
		return nil
	}
	if origin.ProvinceCode == destination.ProvinceCode {
		return nil
	}
	route := models.ExtractedRoute{
		Origin:          origin.ProvinceName,
		Destination:     destination.ProvinceName,
		OriginCode:      origin.ProvinceCode,
		DestinationCode: destination.ProvinceCode,
	}
	if v := a.vehicles.Extract(normalized); v != nil {
		route.Vehicle = v.Type
		route.BodyType = v.BodyType
	}
	return []models.ExtractedRoute{route}
}

func (a *Assembler) buildRoute(origin, dest *extract.LocatedMention, line string) models.ExtractedRoute {
	r := models.ExtractedRoute{
		Origin:          origin.Location.ProvinceName,
		Destination:     dest.Location.ProvinceName,
		OriginCode:      origin.Location.ProvinceCode,
		DestinationCode: dest.Location.ProvinceCode,
	}
	if v := a.vehicles.Extract(line); v != nil {
		r.Vehicle = v.Type
		r.BodyType = v.BodyType
	}
	return r
}

// adjacentToMarker reports whether the mention sits right next to one of
// the departure markers, on either side.
func adjacentToMarker(markers [][]int, m *extract.LocatedMention) bool {
	for _, mk := range markers {
		if m.Start >= mk[1] && m.Start-mk[1] <= markerGap {
			return true
		}
		if mk[0] >= m.End && mk[0]-m.End <= markerGap {
			return true
		}
	}
	return false
}

// differentPlace reports whether the two mentions name different places.
// A province and one of its own districts count as the same place, so
// "Konya Ereğli" or "MUĞLA/FETHİYE" never pairs into a route with
// itself.
func differentPlace(a, b *extract.LocatedMention) bool {
	la, lb := a.Location, b.Location
	if la.ProvinceCode != 0 && la.ProvinceCode == lb.ProvinceCode {
		if la.DistrictName == "" || lb.DistrictName == "" {
			return false
		}
		return la.DistrictName != lb.DistrictName
	}
	if la.ProvinceCode == 0 && lb.ProvinceCode == 0 {
		return la.DistrictName != lb.DistrictName
	}
	return la.ProvinceCode != lb.ProvinceCode
}

func containsPairDelimiter(gap string) bool {
	for _, d := range pairDelimiters {
		if strings.Contains(gap, d) {
			return true
		}
	}
	return false
}

func locationCopy(m *extract.LocatedMention) *models.ParsedLocation {
	if m == nil {
		return nil
	}
	loc := m.Location
	return &loc
}
