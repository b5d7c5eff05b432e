package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToASCII(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Lowercase_Turkish", input: "çğışöü", expected: "cgisou"},
		{name: "Uppercase_Turkish", input: "ÇĞİŞÖÜ", expected: "cgisou"},
		{name: "Dotless_And_Dotted_I", input: "IĞDIR İzmir", expected: "igdir izmir"},
		{name: "Province_Name", input: "Şanlıurfa", expected: "sanliurfa"},
		{name: "Separator_Preserved", input: "MUĞLA/FETHİYE", expected: "mugla/fethiye"},
		{name: "Plus_Preserved", input: "AYDIN+DENİZLİ", expected: "aydin+denizli"},
		{name: "Arrow_Preserved", input: "KAYSERİ → İSTANBUL", expected: "kayseri → istanbul"},
		{name: "Digits_Untouched", input: "0532 580 98 28", expected: "0532 580 98 28"},
		{name: "Circumflex", input: "Elâzığ", expected: "elazig"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeToASCII(tc.input))
		})
	}
}

func TestNormalizeLocationName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Apostrophe_Ablative", input: "İstanbul'dan", expected: "istanbul"},
		{name: "Apostrophe_Dative", input: "Ankara'ya", expected: "ankara"},
		{name: "Curly_Apostrophe", input: "İzmir’den", expected: "izmir"},
		{name: "Plain_Name", input: "Ankara", expected: "ankara"},
		{name: "Decorated_Header", input: "*ÇORLU*", expected: "corlu"},
		{name: "Trailing_Punctuation", input: "Trabzon,", expected: "trabzon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeLocationName(tc.input))
		})
	}
}

func TestStripSuffix(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		stem          string
		suffix        string
		isOrigin      bool
		isDestination bool
	}{
		{name: "Ablative_Dan", input: "istanbuldan", stem: "istanbul", suffix: "dan", isOrigin: true},
		{name: "Ablative_Den", input: "izmirden", stem: "izmir", suffix: "den", isOrigin: true},
		{name: "Ablative_Bafra", input: "bafradan", stem: "bafra", suffix: "dan", isOrigin: true},
		{name: "Ablative_Voiceless", input: "sivastan", stem: "sivas", suffix: "tan", isOrigin: true},
		{name: "Dative_Ya", input: "ankaraya", stem: "ankara", suffix: "ya", isDestination: true},
		{name: "Dative_Ya_Back_Vowel", input: "corluya", stem: "corlu", suffix: "ya", isDestination: true},
		{name: "Dative_Bare_A", input: "trabzona", stem: "trabzon", suffix: "a", isDestination: true},
		{name: "Dative_Bare_E", input: "eskisehire", stem: "eskisehir", suffix: "e", isDestination: true},
		{name: "Dative_Possessive", input: "fabrikasina", stem: "fabrikasi", suffix: "na", isDestination: true},
		{name: "Apostrophe_Boundary", input: "istanbul'dan", stem: "istanbul", suffix: "dan", isOrigin: true},
		{name: "Apostrophe_Locative_No_Cue", input: "istanbul'da", stem: "istanbul", suffix: "da"},
		{name: "Short_Word_Kept", input: "eve", stem: "eve"},
		{name: "Vowel_Final_Name_Kept", input: "bafra", stem: "bafra"},
		{name: "Buffer_Y_Name_Kept", input: "konya", stem: "konya"},
		{name: "Cluster_Guard", input: "edirne", stem: "edirne"},
		{name: "No_Suffix", input: "istanbul", stem: "istanbul"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := StripSuffix(tc.input)
			assert.Equal(t, tc.stem, res.Stem)
			assert.Equal(t, tc.suffix, res.Suffix)
			assert.Equal(t, tc.isOrigin, res.IsOrigin, "IsOrigin")
			assert.Equal(t, tc.isDestination, res.IsDestination, "IsDestination")
		})
	}
}

// Re-applying StripSuffix to a stem it produced must return the stem
// unchanged with no suffix.
func TestStripSuffixIdempotentOnStem(t *testing.T) {
	inputs := []string{
		"istanbuldan", "izmirden", "bafradan", "trabzona",
		"eskisehire", "samsun'dan", "edirneye",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := StripSuffix(input)
			second := StripSuffix(first.Stem)
			assert.Equal(t, first.Stem, second.Stem)
			assert.Empty(t, second.Suffix)
		})
	}
}

func TestSuffixCandidatesAmbiguousEnding(t *testing.T) {
	// samsundan reads as samsu+ndan or samsun+dan without a lexicon; both
	// must be offered, longest suffix first.
	cands := SuffixCandidates("samsundan")
	stems := make([]string, 0, len(cands))
	for _, c := range cands {
		stems = append(stems, c.Stem)
	}
	assert.Equal(t, []string{"samsu", "samsun"}, stems)
	for _, c := range cands {
		assert.True(t, c.IsOrigin)
	}
}

func TestNormalizeMessagePreservesLines(t *testing.T) {
	n := New()

	input := "KAYSERİ  >  İSTANBUL   TIR\r\nÇORLU\t YÜKLER\n\n\n\n0532 580 98 28"
	got := n.NormalizeMessage(input)

	assert.Equal(t, "kayseri > istanbul tir\ncorlu yukler\n\n0532 580 98 28", got)
	assert.Equal(t, []string{"kayseri > istanbul tir", "corlu yukler", "0532 580 98 28"}, n.Lines(got))
}

func TestNormalizeMessageStripsVariationSelector(t *testing.T) {
	n := New()

	// The emoji arrow carries U+FE0F; after normalization only the base
	// glyph remains.
	got := n.NormalizeMessage("BAFRADAN ➡️➡️ TRABZON")
	assert.Equal(t, "bafradan ➡➡ trabzon", got)
}

func TestNormalizeMessageEmpty(t *testing.T) {
	n := New()
	assert.Equal(t, "", n.NormalizeMessage("   \n  \t "))
}
