package models

import (
	"time"
)

// LearnedAlias is a location alias picked up at runtime, either entered
// by an operator or promoted from repeated fuzzy matches. Aliases are
// persisted in Mongo and merged into the in-memory gazetteer at startup.
type LearnedAlias struct {
	Alias        string    `bson:"alias" json:"alias"`
	ProvinceName string    `bson:"province_name" json:"province_name"`
	ProvinceCode int       `bson:"province_code" json:"province_code"`
	Confidence   float64   `bson:"confidence" json:"confidence"`
	Source       string    `bson:"source" json:"source"`
	UsageCount   int       `bson:"usage_count" json:"usage_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	LastUsed     time.Time `bson:"last_used" json:"last_used"`
}

// Source constants
const (
	SourceManual      = "manual"
	SourceAutoLearned = "auto_learned"
)

// NewLearnedAlias creates an alias record with default confidence.
func NewLearnedAlias(alias, provinceName string, provinceCode int, source string) *LearnedAlias {
	now := time.Now()
	return &LearnedAlias{
		Alias:        alias,
		ProvinceName: provinceName,
		ProvinceCode: provinceCode,
		Confidence:   0.8,
		Source:       source,
		UsageCount:   1,
		CreatedAt:    now,
		LastUsed:     now,
	}
}

// IsValidSource checks source against the known constants.
func (la *LearnedAlias) IsValidSource() bool {
	return la.Source == SourceManual || la.Source == SourceAutoLearned
}

// IsValidProvinceCode checks the plate-code range.
func (la *LearnedAlias) IsValidProvinceCode() bool {
	return la.ProvinceCode >= 1 && la.ProvinceCode <= 81
}

// UpdateUsage bumps the usage counters.
func (la *LearnedAlias) UpdateUsage() {
	la.UsageCount++
	la.LastUsed = time.Now()
}

// IsHighConfidence reports whether the alias passed the trust threshold.
func (la *LearnedAlias) IsHighConfidence() bool {
	return la.Confidence >= 0.8
}
