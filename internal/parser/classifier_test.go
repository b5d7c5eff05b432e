package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freight-parser/app/models"
)

func TestDetermineMessageType(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Araniyor", input: "İstanbul çıkışlı TIR ARANIYOR", want: models.MessageTypeVehicleWanted},
		{name: "Lazim", input: "damperli kamyon lazım acil", want: models.MessageTypeVehicleWanted},
		{name: "Ihtiyaci_Vardir", input: "FRİGO TIR İHTİYACI VARDIR", want: models.MessageTypeVehicleWanted},
		{name: "Ariyorum", input: "Tenteli tır arıyorum", want: models.MessageTypeVehicleWanted},
		{name: "Bos_Arac", input: "Ankara'da boş araç var", want: models.MessageTypeVehicleAvailable},
		{name: "Musait", input: "kamyonet müsait Konya", want: models.MessageTypeVehicleAvailable},
		{name: "Bosta", input: "panelvan boşta", want: models.MessageTypeVehicleAvailable},
		{name: "Yuk_Var", input: "İzmir'e yük var", want: models.MessageTypeCargoAvailable},
		{name: "Yuklenecek", input: "25 ton demir yüklenecek", want: models.MessageTypeCargoAvailable},
		{name: "Yukleme", input: "yükleme yarın sabah", want: models.MessageTypeCargoAvailable},
		{name: "Yukler_Header", input: "*ÇORLU YÜKLER*\n📍ANKARA", want: models.MessageTypeCargoAvailable},
		{name: "Unknown", input: "Karabük Ankara uzun kısa olur", want: models.MessageTypeUnknown},
		{name: "Empty", input: "", want: models.MessageTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.DetermineMessageType(tt.input))
		})
	}
}

func TestDetermineMessageTypePriority(t *testing.T) {
	c := NewClassifier()

	// Wanted-vehicle phrasing must win over co-occurring cargo phrasing.
	assert.Equal(t, models.MessageTypeVehicleWanted,
		c.DetermineMessageType("TIR aranıyor yük var hemen"))
	assert.Equal(t, models.MessageTypeVehicleWanted,
		c.DetermineMessageType("yükleme için araç lazım"))
	// Available-vehicle phrasing wins over cargo phrasing the same way.
	assert.Equal(t, models.MessageTypeVehicleAvailable,
		c.DetermineMessageType("boş araç var yükleme olur"))
}
