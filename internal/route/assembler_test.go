package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/extract"
	"github.com/freight-parser/internal/gazetteer"
)

func newAssembler(t *testing.T) (*Assembler, *extract.LocationExtractor) {
	t.Helper()
	gaz := gazetteer.New()
	return NewAssembler(gaz), extract.NewLocationExtractor(gaz)
}

func TestDetermineOriginDestination(t *testing.T) {
	asm, loc := newAssembler(t)

	determine := func(text string) (*models.ParsedLocation, *models.ParsedLocation) {
		mentions := extract.ResolveAmbiguity(loc.ExtractMentions(text))
		return asm.DetermineOriginDestination(mentions, text)
	}

	t.Run("First_And_Last_By_Position", func(t *testing.T) {
		origin, dest := determine("Karabük Ankara uzun kısa olur\n\n05432980340")
		require.NotNil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Karabuk", origin.ProvinceName)
		assert.Equal(t, "Ankara", dest.ProvinceName)
	})

	t.Run("Origin_Suffix_Wins", func(t *testing.T) {
		origin, dest := determine("BAFRADAN ➡️➡️ TRABZON")
		require.NotNil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Samsun", origin.ProvinceName)
		assert.Equal(t, "Bafra", origin.DistrictName)
		assert.Equal(t, "Trabzon", dest.ProvinceName)
	})

	t.Run("Both_Suffixes", func(t *testing.T) {
		origin, dest := determine("İstanbul'dan İzmir'e yük var")
		require.NotNil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Istanbul", origin.ProvinceName)
		assert.Equal(t, "Izmir", dest.ProvinceName)
	})

	t.Run("Departure_Marker_After_Place", func(t *testing.T) {
		origin, dest := determine("İstanbul çıkışlı yük")
		require.NotNil(t, origin)
		assert.Equal(t, "Istanbul", origin.ProvinceName)
		assert.Nil(t, dest)
	})

	t.Run("Departure_Marker_Before_Place", func(t *testing.T) {
		origin, dest := determine("Çıkış: Çorlu\nAnkara teslim")
		require.NotNil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Tekirdag", origin.ProvinceName)
		assert.Equal(t, "Corlu", origin.DistrictName)
		assert.Equal(t, "Ankara", dest.ProvinceName)
	})

	t.Run("Marker_Overrides_Position", func(t *testing.T) {
		// Ankara is first-mentioned, but the marker points at Konya.
		origin, dest := determine("Ankara teslimat var, Konya çıkışlı araç lazım")
		require.NotNil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Konya", origin.ProvinceName)
		assert.Equal(t, "Ankara", dest.ProvinceName)
	})

	t.Run("Single_Place_Is_Origin_Only", func(t *testing.T) {
		origin, dest := determine("Ankara yükleme var")
		require.NotNil(t, origin)
		assert.Equal(t, "Ankara", origin.ProvinceName)
		assert.Nil(t, dest)
	})

	t.Run("Dative_Place_Is_Destination_Only", func(t *testing.T) {
		origin, dest := determine("Hataya gidecek araç var")
		assert.Nil(t, origin)
		require.NotNil(t, dest)
		assert.Equal(t, "Hatay", dest.ProvinceName)
	})

	t.Run("Repeated_Place_No_Destination", func(t *testing.T) {
		origin, dest := determine("Ankara Ankara acil")
		require.NotNil(t, origin)
		assert.Equal(t, "Ankara", origin.ProvinceName)
		assert.Nil(t, dest)
	})

	t.Run("No_Mentions", func(t *testing.T) {
		origin, dest := determine("acil arayın 0532 123 45 67")
		assert.Nil(t, origin)
		assert.Nil(t, dest)
	})
}

func TestExtractAllRoutesDelimitedPairs(t *testing.T) {
	asm, _ := newAssembler(t)

	t.Run("Arrow_And_Dash_Lines", func(t *testing.T) {
		routes := asm.ExtractAllRoutes("KAYSERI > ISTANBUL TIR\nBURSA ➡️ IZMIR\nADANA - MERSIN KAMYON")
		require.Len(t, routes, 3)

		assert.Equal(t, "Kayseri", routes[0].Origin)
		assert.Equal(t, "Istanbul", routes[0].Destination)
		assert.Equal(t, models.VehicleTIR, routes[0].Vehicle)

		assert.Equal(t, "Bursa", routes[1].Origin)
		assert.Equal(t, "Izmir", routes[1].Destination)

		assert.Equal(t, "Adana", routes[2].Origin)
		assert.Equal(t, "Mersin", routes[2].Destination)
		assert.Equal(t, models.VehicleKamyon, routes[2].Vehicle)

		for _, r := range routes {
			assert.NotEmpty(t, r.Origin)
			assert.NotEmpty(t, r.Destination)
		}
	})

	t.Run("Numbered_Lines", func(t *testing.T) {
		routes := asm.ExtractAllRoutes("1- ANKARA IZMIR\n2- KONYA ANTALYA")
		require.Len(t, routes, 2)
		assert.Equal(t, "Ankara", routes[0].Origin)
		assert.Equal(t, "Izmir", routes[0].Destination)
		assert.Equal(t, "Konya", routes[1].Origin)
		assert.Equal(t, "Antalya", routes[1].Destination)
	})

	t.Run("Single_Arrow_Line", func(t *testing.T) {
		routes := asm.ExtractAllRoutes("BAFRADAN ➡️➡️ TRABZON\nFRİGO TIR İHTİYACI VARDIR\n05325809828")
		require.Len(t, routes, 1)
		assert.Equal(t, "Samsun", routes[0].Origin)
		assert.Equal(t, "Trabzon", routes[0].Destination)
	})

	t.Run("Same_Province_Pair_Skipped", func(t *testing.T) {
		// A district with its own province is an address, not a route.
		routes := asm.ExtractAllRoutes("MUĞLA - FETHİYE yükleme")
		assert.Empty(t, routes)
	})
}

func TestExtractAllRoutesSharedOriginHeader(t *testing.T) {
	asm, _ := newAssembler(t)

	t.Run("Corlu_Header", func(t *testing.T) {
		routes := asm.ExtractAllRoutes("*ÇORLU YÜKLER*\n📍ANKARA\n📍KONYA FRİGO\n📍İZMİR\n0532 123 45 67")
		require.Len(t, routes, 3)

		for _, r := range routes {
			assert.Equal(t, "Tekirdag", r.Origin)
			assert.Equal(t, 59, r.OriginCode)
		}
		assert.Equal(t, "Ankara", routes[0].Destination)
		assert.Equal(t, "Konya", routes[1].Destination)
		assert.Equal(t, models.BodyFrigo, routes[1].BodyType)
		assert.Equal(t, "Izmir", routes[2].Destination)
	})

	t.Run("Header_Line_Needs_Keyword", func(t *testing.T) {
		// No loads keyword: the lines are plain mentions, not a header
		// block, and the fallback pairs first with last.
		routes := asm.ExtractAllRoutes("ÇORLU\nANKARA")
		require.Len(t, routes, 1)
	})
}

func TestExtractAllRoutesDepartureList(t *testing.T) {
	asm, _ := newAssembler(t)

	routes := asm.ExtractAllRoutes("(Çıkış: Tekirdağ)\n📍 Ankara frigo\n📍 Samsun")
	require.Len(t, routes, 2)

	assert.Equal(t, "Tekirdag", routes[0].Origin)
	assert.Equal(t, "Ankara", routes[0].Destination)
	assert.Equal(t, models.BodyFrigo, routes[0].BodyType)

	assert.Equal(t, "Tekirdag", routes[1].Origin)
	assert.Equal(t, "Samsun", routes[1].Destination)
}

func TestExtractAllRoutesFallback(t *testing.T) {
	asm, _ := newAssembler(t)

	t.Run("Primary_Pair", func(t *testing.T) {
		routes := asm.ExtractAllRoutes("Karabük Ankara uzun kısa olur\n\n05432980340")
		require.Len(t, routes, 1)
		assert.Equal(t, "Karabuk", routes[0].Origin)
		assert.Equal(t, "Ankara", routes[0].Destination)
	})

	t.Run("No_Route", func(t *testing.T) {
		assert.Empty(t, asm.ExtractAllRoutes("acil frigo araç lazım 0532 123 45 67"))
		assert.Empty(t, asm.ExtractAllRoutes(""))
	})
}
