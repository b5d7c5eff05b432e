package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/app/models"
)

func TestExtractWeightTons(t *testing.T) {
	we := NewWeightExtractor()

	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantTons  float64
	}{
		{name: "Plain", input: "25 ton demir yüklenecek", wantValue: 25, wantTons: 25},
		{name: "Comma_Decimal", input: "3,5 ton parsiyel yük", wantValue: 3.5, wantTons: 3.5},
		{name: "Suffixed_Tondur", input: "12 tondur parça yük", wantValue: 12, wantTons: 12},
		{name: "Suffixed_Tonluk", input: "20 tonluk araç lazım", wantValue: 20, wantTons: 20},
		{name: "Abbrev_Tn", input: "28 tn hurda", wantValue: 28, wantTons: 28},
		{name: "Range_Takes_Lower", input: "25-26 ton yükleme", wantValue: 25, wantTons: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := we.Extract(tt.input)
			require.NotNil(t, w)
			assert.Equal(t, models.WeightUnitTon, w.Unit)
			assert.InDelta(t, tt.wantValue, w.Value, 1e-9)
			assert.InDelta(t, tt.wantTons, w.Tons, 1e-9)
		})
	}
}

func TestExtractWeightKilograms(t *testing.T) {
	we := NewWeightExtractor()

	t.Run("Plain", func(t *testing.T) {
		w := we.Extract("500 kg numune gidecek")
		require.NotNil(t, w)
		assert.Equal(t, models.WeightUnitKg, w.Unit)
		assert.InDelta(t, 500.0, w.Value, 1e-9)
		assert.InDelta(t, 0.5, w.Tons, 1e-9)
	})

	t.Run("Thousands_Dot", func(t *testing.T) {
		// 12.500 kg is Turkish thousands notation for 12500, not 12.5.
		w := we.Extract("12.500 kg patates yüklenecek")
		require.NotNil(t, w)
		assert.Equal(t, models.WeightUnitKg, w.Unit)
		assert.InDelta(t, 12500.0, w.Value, 1e-9)
		assert.InDelta(t, 12.5, w.Tons, 1e-9)
	})

	t.Run("Kiloluk", func(t *testing.T) {
		w := we.Extract("800 kiloluk bobin")
		require.NotNil(t, w)
		assert.InDelta(t, 0.8, w.Tons, 1e-9)
	})
}

func TestExtractWeightTonBeatsKg(t *testing.T) {
	we := NewWeightExtractor()

	w := we.Extract("25 ton yük, 500 kg numune ayrıca")
	require.NotNil(t, w)
	assert.Equal(t, models.WeightUnitTon, w.Unit)
	assert.InDelta(t, 25.0, w.Tons, 1e-9)
}

func TestExtractWeightRejectsTrailerLength(t *testing.T) {
	we := NewWeightExtractor()

	// 13.60 is a trailer length, and with no unit word it is no weight.
	assert.Nil(t, we.Extract("13.60 açık araç mevcut"))
	assert.Nil(t, we.Extract("Ankara İstanbul komple yük"))
	assert.Nil(t, we.Extract(""))
}

func TestExtractWeightBounds(t *testing.T) {
	we := NewWeightExtractor()

	assert.Nil(t, we.Extract("150 ton imkansız yük"), "above plausible tonnage")
	assert.Nil(t, we.Extract("50 kg paket"), "below parcel floor")
	assert.Nil(t, we.Extract("0 ton"), "zero is not a weight")
}

func TestExtractWeightPhoneRun(t *testing.T) {
	we := NewWeightExtractor()

	t.Run("Same_Line_Tail_Skipped", func(t *testing.T) {
		// "40 25 ton" rides the tail of the phone digits.
		assert.Nil(t, we.Extract("irtibat 0543 298 03 40 25 ton"))
	})

	t.Run("Next_Line_Accepted", func(t *testing.T) {
		w := we.Extract("05432980340\n25 ton demir")
		require.NotNil(t, w)
		assert.InDelta(t, 25.0, w.Tons, 1e-9)
		assert.Equal(t, "25 ton", w.OriginalText)
	})
}
