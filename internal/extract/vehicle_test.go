package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/app/models"
)

func TestExtractVehicleTypes(t *testing.T) {
	ve := NewVehicleExtractor()

	tests := []struct {
		name     string
		input    string
		wantType string
	}{
		{name: "Tir", input: "İstanbul çıkışlı tır aranıyor", wantType: models.VehicleTIR},
		{name: "Cekici_Alias", input: "çekici arıyorum acil", wantType: models.VehicleTIR},
		{name: "Kamyon", input: "kamyon lazım yarın sabah", wantType: models.VehicleKamyon},
		{name: "Kamyonet", input: "Kamyonet müsait Ankara", wantType: models.VehicleKamyonet},
		{name: "On_Teker", input: "10 TEKER ARANIYOR", wantType: models.VehicleKamyon},
		{name: "Kirkayak", input: "kırkayak uygun", wantType: models.VehicleKamyon},
		{name: "Panelvan", input: "panelvan boşta", wantType: models.VehiclePanelvan},
		{name: "Panel_Van_Spaced", input: "panel van uygun", wantType: models.VehiclePanelvan},
		{name: "Pikap", input: "pikap lazım", wantType: models.VehiclePickup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ve.Extract(tt.input)
			require.NotNil(t, v)
			assert.Equal(t, tt.wantType, v.Type)
		})
	}
}

func TestExtractVehicleWithBody(t *testing.T) {
	ve := NewVehicleExtractor()

	t.Run("Frigo_Tir", func(t *testing.T) {
		v := ve.Extract("ADANADAN KONYAYA FRİGO TIR İHTİYACI VARDIR")
		require.NotNil(t, v)
		assert.Equal(t, models.VehicleTIR, v.Type)
		assert.Equal(t, models.BodyFrigo, v.BodyType)
		assert.True(t, v.IsRefrigerated)
	})

	t.Run("Tenteli_Tir", func(t *testing.T) {
		v := ve.Extract("Tenteli tır arıyorum")
		require.NotNil(t, v)
		assert.Equal(t, models.VehicleTIR, v.Type)
		assert.Equal(t, models.BodyTenteli, v.BodyType)
		assert.False(t, v.IsRefrigerated)
	})

	t.Run("Damperli_Kamyon", func(t *testing.T) {
		v := ve.Extract("damperli kamyon lazım")
		require.NotNil(t, v)
		assert.Equal(t, models.VehicleKamyon, v.Type)
		assert.Equal(t, models.BodyDamperli, v.BodyType)
	})

	t.Run("Acik_Kasa", func(t *testing.T) {
		v := ve.Extract("açık kasa kamyon uygun")
		require.NotNil(t, v)
		assert.Equal(t, models.VehicleKamyon, v.Type)
		assert.Equal(t, models.BodyAcik, v.BodyType)
	})
}

func TestExtractBodyOnly(t *testing.T) {
	ve := NewVehicleExtractor()

	t.Run("Frigo", func(t *testing.T) {
		v := ve.Extract("frigo araç müsait")
		require.NotNil(t, v)
		assert.Empty(t, v.Type)
		assert.Equal(t, models.BodyFrigo, v.BodyType)
		assert.True(t, v.IsRefrigerated)
	})

	t.Run("Sogutuculu", func(t *testing.T) {
		v := ve.Extract("soğutuculu araç lazım")
		require.NotNil(t, v)
		assert.Equal(t, models.BodyFrigo, v.BodyType)
		assert.True(t, v.IsRefrigerated)
	})

	t.Run("Lowbed", func(t *testing.T) {
		v := ve.Extract("iş makinesi için lowbed gerekli")
		require.NotNil(t, v)
		assert.Empty(t, v.Type)
		assert.Equal(t, models.BodyLowbed, v.BodyType)
		assert.False(t, v.IsRefrigerated)
	})
}

func TestExtractVehicleRowPriority(t *testing.T) {
	ve := NewVehicleExtractor()

	// Both words present: the table row order decides, not text order.
	v := ve.Extract("kamyon veya tır olur")
	require.NotNil(t, v)
	assert.Equal(t, models.VehicleTIR, v.Type)
}

func TestExtractVehicleNone(t *testing.T) {
	ve := NewVehicleExtractor()

	assert.Nil(t, ve.Extract("Ankara İstanbul yük var 25 ton"))
	assert.Nil(t, ve.Extract(""))
	// "vardir" must not leak a TIR match out of its last syllable.
	assert.Nil(t, ve.Extract("yük vardır"))
}
