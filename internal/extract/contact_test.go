package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/internal/gazetteer"
)

func newContactExtractor(t *testing.T) *ContactExtractor {
	t.Helper()
	return NewContactExtractor(gazetteer.New())
}

func TestExtractContactHonorific(t *testing.T) {
	ce := newContactExtractor(t)

	t.Run("Bey", func(t *testing.T) {
		c := ce.Extract("Mehmet bey 0532 123 45 67 arayın")
		require.NotNil(t, c)
		assert.Equal(t, "Mehmet", c.Name)
		assert.Equal(t, "bey", c.Honorific)
		assert.True(t, c.IsKnownName)
	})

	t.Run("Hanim_Uppercase", func(t *testing.T) {
		c := ce.Extract("AYŞE HANIM ile görüşün")
		require.NotNil(t, c)
		assert.Equal(t, "Ayse", c.Name)
		assert.Equal(t, "hanim", c.Honorific)
		assert.True(t, c.IsKnownName)
	})

	t.Run("Abi", func(t *testing.T) {
		c := ce.Extract("yük için Murat abi 0543 298 03 40")
		require.NotNil(t, c)
		assert.Equal(t, "Murat", c.Name)
		assert.Equal(t, "abi", c.Honorific)
	})

	t.Run("Honorific_Beats_Phone_Anchor", func(t *testing.T) {
		// Hasan stands before the phone, but the honorific anchor is
		// checked first and picks Ahmet.
		c := ce.Extract("Ahmet bey için Hasan 0532 123 45 67")
		require.NotNil(t, c)
		assert.Equal(t, "Ahmet", c.Name)
		assert.Equal(t, "bey", c.Honorific)
	})
}

func TestExtractContactBeforePhone(t *testing.T) {
	ce := newContactExtractor(t)

	t.Run("Known_Name", func(t *testing.T) {
		c := ce.Extract("komple yük Veli 0532 123 45 67")
		require.NotNil(t, c)
		assert.Equal(t, "Veli", c.Name)
		assert.Empty(t, c.Honorific)
		assert.True(t, c.IsKnownName)
	})

	t.Run("Unknown_Capitalized", func(t *testing.T) {
		c := ce.Extract("Şevket 0532 123 45 67")
		require.NotNil(t, c)
		assert.Equal(t, "Sevket", c.Name)
		assert.False(t, c.IsKnownName)
	})

	t.Run("Colon_Separator", func(t *testing.T) {
		c := ce.Extract("Hasan: 0543 298 03 40")
		require.NotNil(t, c)
		assert.Equal(t, "Hasan", c.Name)
		assert.True(t, c.IsKnownName)
	})
}

func TestExtractContactRejections(t *testing.T) {
	ce := newContactExtractor(t)

	t.Run("Stopword_Before_Phone", func(t *testing.T) {
		assert.Nil(t, ce.Extract("irtibat: 0532 123 45 67"))
		assert.Nil(t, ce.Extract("tel 0532 123 45 67"))
	})

	t.Run("Place_Before_Phone", func(t *testing.T) {
		assert.Nil(t, ce.Extract("İstanbul 0532 123 45 67"))
		assert.Nil(t, ce.Extract("Çorlu 0532 123 45 67"))
	})

	t.Run("Lowercase_Unknown", func(t *testing.T) {
		assert.Nil(t, ce.Extract("zeytin 0532 123 45 67"))
	})

	t.Run("No_Anchor", func(t *testing.T) {
		assert.Nil(t, ce.Extract("Ankara İstanbul 25 ton yük"))
		assert.Nil(t, ce.Extract(""))
	})
}
