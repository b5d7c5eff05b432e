// Package gazetteer holds the compiled-in reference data for Turkish
// geography: all 81 provinces with plate codes and aliases, a district
// arena covering the names that actually show up in freight traffic, and
// a first-name list used by contact extraction. Lookups are exact-match
// over ASCII-normalized keys; a fuzzy fallback handles misspelled
// province names.
package gazetteer

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"

	"github.com/freight-parser/internal/normalizer"
)

// DataVersion tags the compiled-in tables. Every parse result carries it
// so cached entries from older tables can be found and invalidated.
const DataVersion = "2025.08"

const (
	// fuzzyMinTokenLen keeps short tokens out of fuzzy matching; below
	// this length a single edit reaches too many province names.
	fuzzyMinTokenLen = 5

	// fuzzyThreshold is the minimum similarity for a fuzzy province hit.
	fuzzyThreshold = 0.90
)

// Gazetteer answers lookups against the compiled-in tables. The base
// indexes are built once in New and never mutated afterwards; learned
// aliases live in a small overlay guarded by a mutex so the admin API can
// add them while the service is running.
type Gazetteer struct {
	provinces       []*Province
	districts       []*District
	provinceByCode  map[int]*Province
	provinceByName  map[string]*Province
	districtsByName map[string][]*District
	firstNames      map[string]struct{}

	aliasMu        sync.RWMutex
	learnedAliases map[string]*Province
}

// New builds the lookup indexes from the static tables.
func New() *Gazetteer {
	g := &Gazetteer{
		provinces:       make([]*Province, 0, len(provinceTable)),
		districts:       make([]*District, 0, len(districtTable)),
		provinceByCode:  make(map[int]*Province, len(provinceTable)),
		provinceByName:  make(map[string]*Province, len(provinceTable)*2),
		districtsByName: make(map[string][]*District, len(districtTable)),
		firstNames:      loadFirstNames(),
		learnedAliases:  make(map[string]*Province),
	}

	// 1. Index provinces under their normalized name and every alias
	for i := range provinceTable {
		p := &provinceTable[i]
		g.provinces = append(g.provinces, p)
		g.provinceByCode[p.Code] = p
		g.provinceByName[normalizer.NormalizeToASCII(p.Name)] = p
		for _, alias := range p.Aliases {
			g.provinceByName[normalizer.NormalizeToASCII(alias)] = p
		}
	}

	// 2. Index districts; the same name can map to several provinces
	// and every candidate is kept
	for i := range districtTable {
		d := &districtTable[i]
		d.NormalizedName = normalizer.NormalizeToASCII(d.Name)
		g.districts = append(g.districts, d)
		g.districtsByName[d.NormalizedName] = append(g.districtsByName[d.NormalizedName], d)
	}

	return g
}

// ProvinceByCode returns the province with the given plate code.
func (g *Gazetteer) ProvinceByCode(code int) (*Province, bool) {
	p, ok := g.provinceByCode[code]
	return p, ok
}

// ProvinceByName resolves a province by name or alias. The input is
// ASCII-normalized before lookup, so both "İSTANBUL" and "istanbul"
// resolve. Learned aliases are consulted after the static table.
func (g *Gazetteer) ProvinceByName(name string) (*Province, bool) {
	key := normalizer.NormalizeLocationName(name)
	if key == "" {
		return nil, false
	}

	if p, ok := g.provinceByName[key]; ok {
		return p, true
	}

	g.aliasMu.RLock()
	p, ok := g.learnedAliases[key]
	g.aliasMu.RUnlock()
	return p, ok
}

// DistrictsByName returns every district carrying the given name, in
// table order. More than one entry means the name is ambiguous across
// provinces and the caller must keep all candidates. The returned slice
// is shared; callers must treat it as read-only.
func (g *Gazetteer) DistrictsByName(name string) []*District {
	key := normalizer.NormalizeLocationName(name)
	if key == "" {
		return nil
	}
	return g.districtsByName[key]
}

// IsAmbiguousDistrict reports whether the name maps to districts in more
// than one province.
func (g *Gazetteer) IsAmbiguousDistrict(name string) bool {
	return len(g.DistrictsByName(name)) > 1
}

// FuzzyProvince finds the closest province for a likely-misspelled token.
// It is meant to run only after exact lookups fail: tokens that exactly
// name a province or district never fuzzy-match, short tokens are
// rejected outright, and the best candidate must clear fuzzyThreshold.
func (g *Gazetteer) FuzzyProvince(token string) (*Province, float64, bool) {
	query := normalizer.NormalizeLocationName(token)
	if len([]rune(query)) < fuzzyMinTokenLen {
		return nil, 0, false
	}

	// Exact names stay exact. A token that names a district must not be
	// pulled toward a similarly spelled province (Corlu is a district,
	// not a typo of Corum).
	if _, ok := g.provinceByName[query]; ok {
		return nil, 0, false
	}
	if len(g.districtsByName[query]) > 0 {
		return nil, 0, false
	}

	var best *Province
	bestScore := 0.0
	for _, p := range g.provinces {
		score := similarity(query, strings.ToLower(p.Name))
		for _, alias := range p.Aliases {
			if s := smetrics.JaroWinkler(query, alias, 0.7, 4); s > score {
				score = s
			}
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	if best == nil || bestScore < fuzzyThreshold {
		return nil, 0, false
	}
	return best, bestScore, true
}

// similarity combines Jaro-Winkler with a length-normalized Levenshtein
// score and keeps the higher of the two.
func similarity(query, name string) float64 {
	score := smetrics.JaroWinkler(query, name, 0.7, 4)

	levDist := levenshtein.ComputeDistance(query, name)
	maxLen := math.Max(float64(len(query)), float64(len(name)))
	if maxLen > 0 {
		if levScore := 1.0 - float64(levDist)/maxLen; levScore > score {
			score = levScore
		}
	}

	return score
}

// MergeAlias registers a learned alias for a province at runtime. The
// alias is rejected when the code is unknown, when it already resolves to
// a different province, or when it would shadow a district name.
func (g *Gazetteer) MergeAlias(alias string, provinceCode int) error {
	key := normalizer.NormalizeLocationName(alias)
	if key == "" {
		return fmt.Errorf("empty alias")
	}

	p, ok := g.provinceByCode[provinceCode]
	if !ok {
		return fmt.Errorf("unknown province code %d", provinceCode)
	}

	if existing, exists := g.ProvinceByName(key); exists {
		if existing.Code == provinceCode {
			return nil
		}
		return fmt.Errorf("alias %q already resolves to %s", key, existing.Name)
	}
	if len(g.districtsByName[key]) > 0 {
		return fmt.Errorf("alias %q collides with a district name", key)
	}

	g.aliasMu.Lock()
	g.learnedAliases[key] = p
	g.aliasMu.Unlock()
	return nil
}

// LearnedAliasCount returns how many runtime aliases are registered.
func (g *Gazetteer) LearnedAliasCount() int {
	g.aliasMu.RLock()
	defer g.aliasMu.RUnlock()
	return len(g.learnedAliases)
}

// IsFirstName reports whether the token is a known Turkish first name.
func (g *Gazetteer) IsFirstName(token string) bool {
	_, ok := g.firstNames[normalizer.NormalizeToASCII(strings.TrimSpace(token))]
	return ok
}

// Provinces returns all provinces in plate-code order. The slice is
// shared; callers must treat it as read-only.
func (g *Gazetteer) Provinces() []*Province {
	return g.provinces
}

// Districts returns the full district arena in table order. The slice is
// shared; callers must treat it as read-only.
func (g *Gazetteer) Districts() []*District {
	return g.districts
}
