package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseCache is the Mongo-persisted cache record for one parsed message,
// keyed by the raw-text fingerprint.
type ParseCache struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Fingerprint      string             `bson:"fingerprint" json:"fingerprint"`
	RawMessage       string             `bson:"raw_message" json:"raw_message"`
	NormalizedText   string             `bson:"normalized_text" json:"normalized_text"`
	Result           ParsedMessage      `bson:"result" json:"result"`
	Confidence       float64            `bson:"confidence" json:"confidence"`
	ConfidenceLevel  string             `bson:"confidence_level" json:"confidence_level"`
	MessageType      string             `bson:"message_type" json:"message_type"`
	GazetteerVersion string             `bson:"gazetteer_version" json:"gazetteer_version"`
	ManuallyVerified bool               `bson:"manually_verified" json:"manually_verified"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	LastAccessed     time.Time          `bson:"last_accessed" json:"last_accessed"`
	AccessCount      int                `bson:"access_count" json:"access_count"`
}

// NewParseCache builds a cache record from a parse result.
func NewParseCache(result *ParsedMessage) *ParseCache {
	now := time.Now()
	return &ParseCache{
		Fingerprint:      result.Fingerprint,
		RawMessage:       result.Raw,
		NormalizedText:   result.NormalizedText,
		Result:           *result,
		Confidence:       result.Confidence.Score,
		ConfidenceLevel:  result.Confidence.Level,
		MessageType:      result.MessageType,
		GazetteerVersion: result.GazetteerVersion,
		ManuallyVerified: false,
		CreatedAt:        now,
		LastAccessed:     now,
		AccessCount:      1,
	}
}

// UpdateAccess bumps the access counters on a cache hit.
func (pc *ParseCache) UpdateAccess() {
	pc.LastAccessed = time.Now()
	pc.AccessCount++
}

// IsExpired reports whether the record is older than the given TTL.
func (pc *ParseCache) IsExpired(ttlHours int) bool {
	return time.Since(pc.CreatedAt) > time.Duration(ttlHours)*time.Hour
}

// IsValidGazetteerVersion reports whether the record was produced with
// the currently compiled-in gazetteer tables.
func (pc *ParseCache) IsValidGazetteerVersion(currentVersion string) bool {
	return pc.GazetteerVersion == currentVersion
}
