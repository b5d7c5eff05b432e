package models

import "time"

// ParsedLocation is one textual location mention resolved against the
// gazetteer. Ambiguous district names keep every candidate province in
// PossibleProvinces instead of guessing a winner.
type ParsedLocation struct {
	OriginalText      string        `json:"original_text"`
	ProvinceName      string        `json:"province_name"`
	ProvinceCode      int           `json:"province_code"`
	DistrictName      string        `json:"district_name,omitempty"`
	IsDistrict        bool          `json:"is_district"`
	Confidence        float64       `json:"confidence"`
	IsAmbiguous       bool          `json:"is_ambiguous,omitempty"`
	PossibleProvinces []ProvinceRef `json:"possible_provinces,omitempty"`
}

// ProvinceRef is a lightweight province reference used in ambiguity lists.
type ProvinceRef struct {
	ProvinceName string `json:"province_name"`
	ProvinceCode int    `json:"province_code"`
}

// ExtractedRoute is one origin-destination pair. Multi-route messages
// yield several of these sharing a single contact.
type ExtractedRoute struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCode      int    `json:"origin_code,omitempty"`
	DestinationCode int    `json:"destination_code,omitempty"`
	Vehicle         string `json:"vehicle,omitempty"`
	BodyType        string `json:"body_type,omitempty"`
}

// ParsedVehicle holds the matched vehicle and body type. IsRefrigerated
// is derived from the body type, never matched separately.
type ParsedVehicle struct {
	Type           string `json:"type"`
	BodyType       string `json:"body_type,omitempty"`
	IsRefrigerated bool   `json:"is_refrigerated"`
	OriginalText   string `json:"original_text"`
}

// ParsedPhone holds one phone match normalized to the 11-character
// 05XXXXXXXXX form. Masked digits are kept as lower-case x.
type ParsedPhone struct {
	Number       string `json:"number"`
	OriginalText string `json:"original_text"`
	IsMasked     bool   `json:"is_masked"`
}

// ParsedWeight holds a cargo weight figure with its unit as written.
type ParsedWeight struct {
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	Tons         float64 `json:"tons"`
	OriginalText string  `json:"original_text"`
}

// ParsedContact holds a best-effort contact name. IsKnownName is set
// when the token is on the curated first-name list.
type ParsedContact struct {
	Name         string `json:"name"`
	Honorific    string `json:"honorific,omitempty"`
	IsKnownName  bool   `json:"is_known_name"`
	OriginalText string `json:"original_text"`
}

// ConfidenceInfo is the scorer output: weighted score, discrete level
// and the per-field factor breakdown.
type ConfidenceInfo struct {
	Score   float64            `json:"score"`
	Level   string             `json:"level"`
	Factors map[string]float64 `json:"factors"`
}

// ParsedMessage is the aggregate parse result. It is created once per
// input and never mutated after being returned.
type ParsedMessage struct {
	Raw                string           `json:"raw"`
	NormalizedText     string           `json:"normalized_text"`
	MessageType        string           `json:"message_type"`
	Origin             *ParsedLocation  `json:"origin,omitempty"`
	Destination        *ParsedLocation  `json:"destination,omitempty"`
	MentionedLocations []ParsedLocation `json:"mentioned_locations"`
	Routes             []ExtractedRoute `json:"routes,omitempty"`
	Vehicle            *ParsedVehicle   `json:"vehicle,omitempty"`
	Phones             []ParsedPhone    `json:"phones,omitempty"`
	Contact            *ParsedContact   `json:"contact,omitempty"`
	Weight             *ParsedWeight    `json:"weight,omitempty"`
	CargoType          string           `json:"cargo_type,omitempty"`
	LoadType           string           `json:"load_type,omitempty"`
	IsUrgent           bool             `json:"is_urgent"`
	UrgencyWords       []string         `json:"urgency_words,omitempty"`
	Confidence         ConfidenceInfo   `json:"confidence"`
	Warnings           []string         `json:"warnings,omitempty"`
	Fingerprint        string           `json:"fingerprint"`
	GazetteerVersion   string           `json:"gazetteer_version,omitempty"`
	ParsedAt           time.Time        `json:"parsed_at"`
}

// Message type constants
const (
	MessageTypeVehicleWanted    = "VEHICLE_WANTED"
	MessageTypeVehicleAvailable = "VEHICLE_AVAILABLE"
	MessageTypeCargoAvailable   = "CARGO_AVAILABLE"
	MessageTypeUnknown          = "UNKNOWN"
)

// Confidence level constants
const (
	ConfidenceHigh    = "HIGH"
	ConfidenceMedium  = "MEDIUM"
	ConfidenceLow     = "LOW"
	ConfidenceVeryLow = "VERY_LOW"
)

// Vehicle type constants
const (
	VehicleTIR      = "TIR"
	VehicleKamyon   = "KAMYON"
	VehicleKamyonet = "KAMYONET"
	VehiclePanelvan = "PANELVAN"
	VehiclePickup   = "PICKUP"
)

// Body type constants
const (
	BodyFrigo    = "FRIGO"
	BodyTenteli  = "TENTELI"
	BodyKapali   = "KAPALI"
	BodyAcik     = "ACIK"
	BodyDamperli = "DAMPERLI"
	BodyLowbed   = "LOWBED"
)

// Load type constants
const (
	LoadTypeKomple   = "KOMPLE"
	LoadTypeParsiyel = "PARSIYEL"
)

// Weight unit constants
const (
	WeightUnitTon = "ton"
	WeightUnitKg  = "kg"
)

// Confidence factor keys
const (
	FactorOrigin       = "origin"
	FactorDestination  = "destination"
	FactorVehicle      = "vehicle"
	FactorPhone        = "phone"
	FactorWeight       = "weight"
	FactorContact      = "contact"
	FactorCargoType    = "cargo_type"
	FactorBodyType     = "body_type"
	FactorRouteBonus   = "route_bonus"
	FactorContactBonus = "contact_bonus"
)

// IsValidMessageType checks message_type against the known constants.
func (pm *ParsedMessage) IsValidMessageType() bool {
	switch pm.MessageType {
	case MessageTypeVehicleWanted, MessageTypeVehicleAvailable, MessageTypeCargoAvailable, MessageTypeUnknown:
		return true
	}
	return false
}

// IsValidConfidenceLevel checks confidence.level against the known constants.
func (pm *ParsedMessage) IsValidConfidenceLevel() bool {
	switch pm.Confidence.Level {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceVeryLow:
		return true
	}
	return false
}

// HasCompleteRoute reports whether both endpoints were resolved.
func (pm *ParsedMessage) HasCompleteRoute() bool {
	return pm.Origin != nil && pm.Destination != nil
}

// HasPhone reports whether at least one phone number was extracted.
func (pm *ParsedMessage) HasPhone() bool {
	return len(pm.Phones) > 0
}
