package parser

import (
	"regexp"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/normalizer"
)

// intentRow is one message-intent pattern with its type tag.
type intentRow struct {
	tag string
	re  *regexp.Regexp
}

// Classifier decides the message intent from lexical cues. Rows are
// evaluated top to bottom and the first match wins: "TIR aranıyor yük
// var" is a vehicle request even though it also carries cargo phrasing.
type Classifier struct {
	table []intentRow
}

// NewClassifier creates a classifier with its intent table.
func NewClassifier() *Classifier {
	c := &Classifier{}
	c.initializePatterns()
	return c
}

func (c *Classifier) initializePatterns() {
	c.table = []intentRow{
		// someone needs a vehicle
		{models.MessageTypeVehicleWanted, regexp.MustCompile(`\baraniyor\b|\blazim\b|\bihtiyac(?:i(?:m(?:iz)?)?)?\b|\bariyor(?:um|uz)?\b`)},
		// someone offers an idle vehicle
		{models.MessageTypeVehicleAvailable, regexp.MustCompile(`\bbos arac\b|\bbosta\b|\bmusait\b|\buygun\b`)},
		// someone offers cargo
		{models.MessageTypeCargoAvailable, regexp.MustCompile(`\byuk var\b|\byuklenecek\b|\byukleme(?:si)?\b|\byuk(?:ler|leri|lerimiz)\b|\byuku\b|\byuk mevcut\b`)},
	}
}

// DetermineMessageType returns the message intent, or UNKNOWN when no
// intent phrase is present.
func (c *Classifier) DetermineMessageType(text string) string {
	normalized := normalizer.NormalizeToASCII(text)
	for _, row := range c.table {
		if row.re.MatchString(normalized) {
			return row.tag
		}
	}
	return models.MessageTypeUnknown
}
