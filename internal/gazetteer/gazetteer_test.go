package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsAllProvinces(t *testing.T) {
	g := New()

	assert.Len(t, g.Provinces(), 81)
	for code := 1; code <= 81; code++ {
		p, ok := g.ProvinceByCode(code)
		require.True(t, ok, "missing province code %d", code)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Region)
	}

	istanbul, ok := g.ProvinceByCode(34)
	require.True(t, ok)
	assert.Equal(t, "Istanbul", istanbul.Name)
	assert.Equal(t, RegionMarmara, istanbul.Region)

	karabuk, ok := g.ProvinceByCode(78)
	require.True(t, ok)
	assert.Equal(t, "Karabuk", karabuk.Name)
	assert.Equal(t, RegionKaradeniz, karabuk.Region)

	antep, ok := g.ProvinceByCode(27)
	require.True(t, ok)
	assert.Equal(t, RegionGuneydoguAnadolu, antep.Region)
}

func TestProvinceByName(t *testing.T) {
	g := New()

	tests := []struct {
		name     string
		input    string
		wantCode int
		wantOK   bool
	}{
		{name: "Exact_Lowercase", input: "ankara", wantCode: 6, wantOK: true},
		{name: "Turkish_Uppercase", input: "İSTANBUL", wantCode: 34, wantOK: true},
		{name: "Turkish_Chars", input: "Çanakkale", wantCode: 17, wantOK: true},
		{name: "Alias_Urfa", input: "urfa", wantCode: 63, wantOK: true},
		{name: "Alias_Antep", input: "Antep", wantCode: 27, wantOK: true},
		{name: "Alias_Maras", input: "maraş", wantCode: 46, wantOK: true},
		{name: "Alias_Afyon", input: "afyon", wantCode: 3, wantOK: true},
		{name: "Apostrophe_Suffix", input: "Ankara'ya", wantCode: 6, wantOK: true},
		{name: "District_Not_Province", input: "corlu", wantOK: false},
		{name: "Unknown", input: "londra", wantOK: false},
		{name: "Empty", input: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := g.ProvinceByName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, p)
				assert.Equal(t, tt.wantCode, p.Code)
			}
		})
	}
}

func TestDistrictsByName(t *testing.T) {
	g := New()

	t.Run("Unique_Corlu", func(t *testing.T) {
		ds := g.DistrictsByName("Çorlu")
		require.Len(t, ds, 1)
		assert.Equal(t, 59, ds[0].ProvinceCode)
		assert.True(t, ds[0].IsLogisticsHub)
		assert.False(t, g.IsAmbiguousDistrict("corlu"))
	})

	t.Run("Unique_Bafra", func(t *testing.T) {
		ds := g.DistrictsByName("bafra")
		require.Len(t, ds, 1)
		assert.Equal(t, 55, ds[0].ProvinceCode)
	})

	t.Run("Ambiguous_Eregli", func(t *testing.T) {
		ds := g.DistrictsByName("Ereğli")
		require.Len(t, ds, 2)
		codes := []int{ds[0].ProvinceCode, ds[1].ProvinceCode}
		assert.ElementsMatch(t, []int{42, 67}, codes)
		assert.True(t, g.IsAmbiguousDistrict("eregli"))
	})

	t.Run("Ambiguous_Golbasi", func(t *testing.T) {
		ds := g.DistrictsByName("Gölbaşı")
		require.Len(t, ds, 2)
		codes := []int{ds[0].ProvinceCode, ds[1].ProvinceCode}
		assert.ElementsMatch(t, []int{2, 6}, codes)
	})

	t.Run("Ambiguous_Yenisehir_Three_Ways", func(t *testing.T) {
		ds := g.DistrictsByName("yenisehir")
		require.Len(t, ds, 3)
		codes := make([]int, 0, len(ds))
		for _, d := range ds {
			codes = append(codes, d.ProvinceCode)
		}
		assert.ElementsMatch(t, []int{16, 21, 33}, codes)
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Empty(t, g.DistrictsByName("atlantis"))
	})
}

func TestFuzzyProvince(t *testing.T) {
	g := New()

	t.Run("Doubled_Letter", func(t *testing.T) {
		p, score, ok := g.FuzzyProvince("istanbbul")
		require.True(t, ok)
		assert.Equal(t, 34, p.Code)
		assert.GreaterOrEqual(t, score, 0.90)
	})

	t.Run("Dropped_Letter", func(t *testing.T) {
		p, _, ok := g.FuzzyProvince("ankra")
		require.True(t, ok)
		assert.Equal(t, 6, p.Code)
	})

	t.Run("Exact_Province_Rejected", func(t *testing.T) {
		_, _, ok := g.FuzzyProvince("istanbul")
		assert.False(t, ok)
	})

	t.Run("District_Name_Rejected", func(t *testing.T) {
		// Corlu is one edit cluster away from Corum; the district guard
		// must keep it from resolving as a misspelled province.
		_, _, ok := g.FuzzyProvince("corlu")
		assert.False(t, ok)
	})

	t.Run("Too_Short", func(t *testing.T) {
		_, _, ok := g.FuzzyProvince("izmr")
		assert.False(t, ok)
	})

	t.Run("Unrelated_Word", func(t *testing.T) {
		_, _, ok := g.FuzzyProvince("teker")
		assert.False(t, ok)
	})
}

func TestMergeAlias(t *testing.T) {
	g := New()

	t.Run("Adds_And_Resolves", func(t *testing.T) {
		require.NoError(t, g.MergeAlias("stanbul", 34))
		p, ok := g.ProvinceByName("stanbul")
		require.True(t, ok)
		assert.Equal(t, 34, p.Code)
		assert.Equal(t, 1, g.LearnedAliasCount())
	})

	t.Run("Idempotent_Same_Target", func(t *testing.T) {
		require.NoError(t, g.MergeAlias("stanbul", 34))
		assert.Equal(t, 1, g.LearnedAliasCount())
	})

	t.Run("Conflicting_Target", func(t *testing.T) {
		err := g.MergeAlias("izmir", 34)
		assert.Error(t, err)
	})

	t.Run("District_Collision", func(t *testing.T) {
		err := g.MergeAlias("corlu", 59)
		assert.Error(t, err)
	})

	t.Run("Unknown_Code", func(t *testing.T) {
		err := g.MergeAlias("yenialias", 99)
		assert.Error(t, err)
	})
}

func TestIsFirstName(t *testing.T) {
	g := New()

	assert.True(t, g.IsFirstName("mehmet"))
	assert.True(t, g.IsFirstName("Ayşe"))
	assert.True(t, g.IsFirstName("MUSTAFA"))
	assert.False(t, g.IsFirstName("corlu"))
	assert.False(t, g.IsFirstName("nakliyat"))
	assert.False(t, g.IsFirstName(""))
}
