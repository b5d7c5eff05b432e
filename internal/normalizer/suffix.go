package normalizer

import "strings"

// SuffixResult is the outcome of stripping one directional case ending
// from a single word. IsOrigin marks ablative/locative endings ("from"),
// IsDestination marks dative endings ("to"). A word with no recognized
// ending comes back with Stem == word and an empty Suffix.
type SuffixResult struct {
	Stem          string
	Suffix        string
	IsOrigin      bool
	IsDestination bool
}

// minStemLen guards against turning short unrelated words into false
// stems ("eve" must not become "ev" + destination cue... it ends up kept
// because the stem would be 2 runes).
const minStemLen = 3

// stemCheck constrains the stem shape an ending may attach to. A nil
// check accepts any stem.
type stemCheck func(stem []rune) bool

type suffixRule struct {
	surface       string
	isOrigin      bool
	isDestination bool
	check         stemCheck
}

// suffixRules is ordered longest surface first so -ndan wins over -dan
// and -ya wins over -a. The stem checks follow Turkish vowel harmony:
//
//   - -ndan/-nden and -na/-ne attach after a possessive vowel
//   - -ya/-ye attach after a vowel (buffer y)
//   - bare -a/-e attach after a consonant, and never after the buffer y
//     or a final consonant cluster, which keeps vowel-final names like
//     "bafra" and "edirne" from losing their last letter
var suffixRules = []suffixRule{
	// Ablative (origin cues)
	{surface: "ndan", isOrigin: true, check: endsInPossessiveVowel},
	{surface: "nden", isOrigin: true, check: endsInPossessiveVowel},
	{surface: "dan", isOrigin: true},
	{surface: "den", isOrigin: true},
	{surface: "tan", isOrigin: true},
	{surface: "ten", isOrigin: true},

	// Dative (destination cues)
	{surface: "ya", isDestination: true, check: endsInVowel},
	{surface: "ye", isDestination: true, check: endsInVowel},
	{surface: "na", isDestination: true, check: endsInPossessiveVowel},
	{surface: "ne", isDestination: true, check: endsInPossessiveVowel},
	{surface: "a", isDestination: true, check: bareDativeStem},
	{surface: "e", isDestination: true, check: bareDativeStem},
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func endsInVowel(stem []rune) bool {
	return isVowel(stem[len(stem)-1])
}

// endsInPossessiveVowel accepts the folded forms of ı/i/u/ü, the only
// vowels a possessive marker leaves at the stem end.
func endsInPossessiveVowel(stem []rune) bool {
	last := stem[len(stem)-1]
	return last == 'i' || last == 'u'
}

func bareDativeStem(stem []rune) bool {
	last := stem[len(stem)-1]
	if isVowel(last) || last == 'y' {
		return false
	}
	if len(stem) >= 2 && !isVowel(stem[len(stem)-2]) {
		return false
	}
	return true
}

// StripSuffix strips the longest recognized directional case ending from
// an already-folded word. Proper-noun endings attached with an apostrophe
// ("istanbul'dan") split at the apostrophe regardless of the suffix
// table, since the boundary is explicit. Pure function, no gazetteer
// access; callers that need to validate the stem against known place
// names should iterate SuffixCandidates instead.
func StripSuffix(word string) SuffixResult {
	w := strings.TrimSpace(word)
	if w == "" {
		return SuffixResult{}
	}

	if i := strings.LastIndexAny(w, "'’"); i > 0 {
		stem, tail := w[:i], trimApostrophe(w[i:])
		if len([]rune(stem)) >= minStemLen {
			res := SuffixResult{Stem: stem, Suffix: tail}
			for _, rule := range suffixRules {
				if tail == rule.surface {
					res.IsOrigin = rule.isOrigin
					res.IsDestination = rule.isDestination
					break
				}
			}
			return res
		}
	}

	if cands := SuffixCandidates(w); len(cands) > 0 {
		return cands[0]
	}
	return SuffixResult{Stem: w}
}

// SuffixCandidates returns every valid strip of the word, longest suffix
// first. More than one candidate means the ending is ambiguous without a
// lexicon ("samsundan" reads as samsu+ndan or samsun+dan); the location
// extractor tries them in order against the gazetteer.
func SuffixCandidates(word string) []SuffixResult {
	runes := []rune(word)
	var out []SuffixResult
	for _, rule := range suffixRules {
		suffix := []rune(rule.surface)
		if len(runes) < len(suffix)+minStemLen {
			continue
		}
		if string(runes[len(runes)-len(suffix):]) != rule.surface {
			continue
		}
		stem := runes[:len(runes)-len(suffix)]
		if rule.check != nil && !rule.check(stem) {
			continue
		}
		out = append(out, SuffixResult{
			Stem:          string(stem),
			Suffix:        rule.surface,
			IsOrigin:      rule.isOrigin,
			IsDestination: rule.isDestination,
		})
	}
	return out
}

func trimApostrophe(s string) string {
	return strings.TrimLeft(s, "'’")
}
