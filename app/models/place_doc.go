package models

import "time"

// PlaceDoc is the searchable document for one gazetteer place, seeded
// into Meilisearch. Provinces and districts share the index; Kind tells
// them apart and district docs carry their parent province.
type PlaceDoc struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Name             string    `json:"name"`
	NormalizedName   string    `json:"normalized_name"`
	ProvinceName     string    `json:"province_name"`
	ProvinceCode     int       `json:"province_code"`
	Region           string    `json:"region"`
	Aliases          []string  `json:"aliases,omitempty"`
	IsLogisticsHub   bool      `json:"is_logistics_hub"`
	GazetteerVersion string    `json:"gazetteer_version"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PlaceDoc kind constants
const (
	PlaceKindProvince = "province"
	PlaceKindDistrict = "district"
)

// IsValidKind checks kind against the known constants.
func (pd *PlaceDoc) IsValidKind() bool {
	return pd.Kind == PlaceKindProvince || pd.Kind == PlaceKindDistrict
}
