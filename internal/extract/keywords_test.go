package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freight-parser/app/models"
)

func TestExtractCargoType(t *testing.T) {
	ke := NewKeywordExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Demir", input: "25 ton demir yüklenecek", want: "DEMIR"},
		{name: "Celik_Maps_To_Demir", input: "çelik profil yükü", want: "DEMIR"},
		{name: "Gida", input: "narenciye yüklemesi Mersin", want: "GIDA"},
		{name: "Patates", input: "patates var Nevşehir çıkışlı", want: "GIDA"},
		{name: "Tekstil", input: "kumaş topu İstanbul", want: "TEKSTIL"},
		{name: "Insaat", input: "çimento torbalı", want: "INSAAT"},
		{name: "Hububat", input: "buğday yüklemesi", want: "HUBUBAT"},
		{name: "Mermer", input: "mermer blok ağır yük", want: "MERMER"},
		{name: "Ambalaj", input: "bobin kağıt yüklenecek", want: "AMBALAJ"},
		{name: "None", input: "Ankara İstanbul komple", want: ""},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ke.ExtractCargoType(tt.input))
		})
	}
}

func TestExtractCargoTypeRowPriority(t *testing.T) {
	ke := NewKeywordExtractor()

	// Palletized iron: the pallet row sits above the iron row.
	assert.Equal(t, "PALET", ke.ExtractCargoType("paletli demir yükü"))
}

func TestExtractLoadType(t *testing.T) {
	ke := NewKeywordExtractor()

	assert.Equal(t, models.LoadTypeParsiyel, ke.ExtractLoadType("parsiyel yük var"))
	assert.Equal(t, models.LoadTypeParsiyel, ke.ExtractLoadType("grupaj olur"))
	assert.Equal(t, models.LoadTypeKomple, ke.ExtractLoadType("komple yük Ankara"))
	assert.Equal(t, models.LoadTypeKomple, ke.ExtractLoadType("tam yük aranıyor"))
	assert.Empty(t, ke.ExtractLoadType("Ankara İstanbul 25 ton"))

	// Both words present: partial wins by row order.
	assert.Equal(t, models.LoadTypeParsiyel, ke.ExtractLoadType("komple veya parsiyel olur"))
}

func TestExtractUrgency(t *testing.T) {
	ke := NewKeywordExtractor()

	t.Run("Single", func(t *testing.T) {
		urgent, words := ke.ExtractUrgency("ACİL tır lazım")
		assert.True(t, urgent)
		assert.Equal(t, []string{"acil"}, words)
	})

	t.Run("Deduped_In_Text_Order", func(t *testing.T) {
		urgent, words := ke.ExtractUrgency("acil yük bugün yüklenecek acil arayın")
		assert.True(t, urgent)
		assert.Equal(t, []string{"acil", "bugun"}, words)
	})

	t.Run("None", func(t *testing.T) {
		urgent, words := ke.ExtractUrgency("Ankara İstanbul komple yük")
		assert.False(t, urgent)
		assert.Empty(t, words)
	})
}
