package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPhoneFormats(t *testing.T) {
	pe := NewPhoneExtractor()

	tests := []struct {
		name  string
		input string
	}{
		{name: "Continuous", input: "05321234567"},
		{name: "Continuous_Intl", input: "+905321234567"},
		{name: "Spaced", input: "0532 123 45 67"},
		{name: "Dashed", input: "0532-123-45-67"},
		{name: "Dotted", input: "0.532.123.45.67"},
		{name: "Bare_Ten_Digits", input: "5321234567"},
		{name: "Intl_Grouped", input: "90 532 123 45 67"},
		{name: "Leading_Zero_Apart", input: "0 532 123 45 67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phones := pe.Extract("yük için arayın " + tt.input)
			require.Len(t, phones, 1, "expected exactly one phone in %q", tt.input)
			assert.Equal(t, "05321234567", phones[0].Number)
			assert.False(t, phones[0].IsMasked)
		})
	}
}

func TestExtractPhoneNoDoubleCount(t *testing.T) {
	pe := NewPhoneExtractor()

	// The spaced form also satisfies the bare-group pattern; overlap
	// resolution must keep a single match.
	phones := pe.Extract("0532 123 45 67")
	require.Len(t, phones, 1)
}

func TestExtractPhoneMultiple(t *testing.T) {
	pe := NewPhoneExtractor()

	phones := pe.Extract("Ahmet 0532 123 45 67 / Mehmet 0543 298 03 40")
	require.Len(t, phones, 2)
	assert.Equal(t, "05321234567", phones[0].Number)
	assert.Equal(t, "05432980340", phones[1].Number)
}

func TestExtractPhoneMasked(t *testing.T) {
	pe := NewPhoneExtractor()

	phones := pe.Extract("iletişim 0532 xxx xx 67")
	require.Len(t, phones, 1)
	assert.Equal(t, "0532xxxxx67", phones[0].Number)
	assert.True(t, phones[0].IsMasked)
	assert.Len(t, phones[0].Number, 11)
}

func TestExtractPhoneRegression(t *testing.T) {
	pe := NewPhoneExtractor()

	t.Run("Single_Continuous", func(t *testing.T) {
		phones := pe.Extract("Karabük Ankara uzun kısa olur\n\n05432980340")
		require.Len(t, phones, 1)
		assert.Equal(t, "05432980340", phones[0].Number)
	})

	t.Run("Zero_Apart_Groups", func(t *testing.T) {
		phones := pe.Extract("acil arayın 0 541 281 09 67")
		require.Len(t, phones, 1)
		assert.Equal(t, "05412810967", phones[0].Number)
	})
}

func TestExtractPhoneRejectsNonMobile(t *testing.T) {
	pe := NewPhoneExtractor()

	assert.Empty(t, pe.Extract("sipariş no 1234567"))
	assert.Empty(t, pe.Extract("0212 123 45 67"))
	assert.Empty(t, pe.Extract("25 ton yük 13.60 dorse"))
	assert.Empty(t, pe.Extract(""))
}

func TestExtractPhoneInsideLongerDigitRun(t *testing.T) {
	pe := NewPhoneExtractor()

	// a continuous mobile shape glued to extra digits is not a phone
	assert.Empty(t, pe.Extract("ref 9905321234567890"))
}
