package tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
)

// goldenCase là một tin nhắn thật kèm các field kỳ vọng. Field nào
// không khai báo trong fixture thì không được assert.
type goldenCase struct {
	Name   string       `json:"name"`
	Raw    string       `json:"raw"`
	Expect goldenExpect `json:"expect"`
}

type goldenExpect struct {
	MessageType     string   `json:"message_type,omitempty"`
	OriginCode      int      `json:"origin_code,omitempty"`
	OriginDistrict  string   `json:"origin_district,omitempty"`
	DestinationCode int      `json:"destination_code,omitempty"`
	VehicleType     string   `json:"vehicle_type,omitempty"`
	BodyType        string   `json:"body_type,omitempty"`
	Refrigerated    *bool    `json:"refrigerated,omitempty"`
	LoadType        string   `json:"load_type,omitempty"`
	CargoType       string   `json:"cargo_type,omitempty"`
	ContactName     string   `json:"contact_name,omitempty"`
	Phones          []string `json:"phones,omitempty"`
	MaskedPhone     *bool    `json:"masked_phone,omitempty"`
	WeightTons      float64  `json:"weight_tons,omitempty"`
	Urgent          *bool    `json:"urgent,omitempty"`
	Ambiguous       *bool    `json:"ambiguous,omitempty"`
	RouteCount      *int     `json:"route_count,omitempty"`
	MinLevel        string   `json:"min_level,omitempty"`
}

// levelRank xếp hạng confidence level để so sánh min_level.
var levelRank = map[string]int{
	models.ConfidenceVeryLow: 0,
	models.ConfidenceLow:     1,
	models.ConfidenceMedium:  2,
	models.ConfidenceHigh:    3,
}

func loadGoldenCases(t *testing.T) []goldenCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("fixtures", "messages.json"))
	require.NoError(t, err, "không đọc được file fixture")

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases), "fixture không phải JSON hợp lệ")
	require.NotEmpty(t, cases)
	return cases
}

// TestGoldenCorpus chạy toàn bộ corpus tin nhắn thật qua parser và so
// với kết quả kỳ vọng trong fixtures/messages.json.
func TestGoldenCorpus(t *testing.T) {
	p := parser.New(gazetteer.New(), zap.NewNop())

	for _, tc := range loadGoldenCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			msg := p.Parse(tc.Raw)
			require.NotNil(t, msg)

			// Bất biến chung cho mọi message, kể cả khi fixture không
			// khai báo kỳ vọng nào.
			assert.Equal(t, tc.Raw, msg.Raw)
			assert.True(t, msg.IsValidMessageType(), "message_type lạ: %s", msg.MessageType)
			assert.True(t, msg.IsValidConfidenceLevel(), "confidence level lạ: %s", msg.Confidence.Level)
			assert.Len(t, msg.Fingerprint, 64)
			assert.Equal(t, gazetteer.DataVersion, msg.GazetteerVersion)

			assertGoldenExpect(t, tc.Expect, msg)
		})
	}
}

func assertGoldenExpect(t *testing.T, want goldenExpect, msg *models.ParsedMessage) {
	t.Helper()

	if want.MessageType != "" {
		assert.Equal(t, want.MessageType, msg.MessageType)
	}

	if want.OriginCode != 0 {
		require.NotNil(t, msg.Origin, "kỳ vọng có origin")
		assert.Equal(t, want.OriginCode, msg.Origin.ProvinceCode)
		if want.OriginDistrict != "" {
			assert.Equal(t, want.OriginDistrict, msg.Origin.DistrictName)
		}
	}
	if want.DestinationCode != 0 {
		require.NotNil(t, msg.Destination, "kỳ vọng có destination")
		assert.Equal(t, want.DestinationCode, msg.Destination.ProvinceCode)
	}

	if want.VehicleType != "" || want.BodyType != "" || want.Refrigerated != nil {
		require.NotNil(t, msg.Vehicle, "kỳ vọng có vehicle")
		if want.VehicleType != "" {
			assert.Equal(t, want.VehicleType, msg.Vehicle.Type)
		}
		if want.BodyType != "" {
			assert.Equal(t, want.BodyType, msg.Vehicle.BodyType)
		}
		if want.Refrigerated != nil {
			assert.Equal(t, *want.Refrigerated, msg.Vehicle.IsRefrigerated)
		}
	}

	if want.LoadType != "" {
		assert.Equal(t, want.LoadType, msg.LoadType)
	}
	if want.CargoType != "" {
		assert.Equal(t, want.CargoType, msg.CargoType)
	}

	if want.ContactName != "" {
		require.NotNil(t, msg.Contact, "kỳ vọng có contact")
		assert.Equal(t, want.ContactName, msg.Contact.Name)
	}

	if len(want.Phones) > 0 {
		numbers := make([]string, 0, len(msg.Phones))
		for _, ph := range msg.Phones {
			numbers = append(numbers, ph.Number)
		}
		assert.Equal(t, want.Phones, numbers)
	}
	if want.MaskedPhone != nil {
		require.NotEmpty(t, msg.Phones)
		assert.Equal(t, *want.MaskedPhone, msg.Phones[0].IsMasked)
	}

	if want.WeightTons != 0 {
		require.NotNil(t, msg.Weight, "kỳ vọng có weight")
		assert.InDelta(t, want.WeightTons, msg.Weight.Tons, 1e-9)
	}

	if want.Urgent != nil {
		assert.Equal(t, *want.Urgent, msg.IsUrgent)
	}

	if want.Ambiguous != nil {
		ambiguous := false
		for _, loc := range msg.MentionedLocations {
			if loc.IsAmbiguous {
				ambiguous = true
				break
			}
		}
		assert.Equal(t, *want.Ambiguous, ambiguous)
		if *want.Ambiguous {
			assert.NotEmpty(t, msg.Warnings)
		}
	}

	if want.RouteCount != nil {
		assert.Len(t, msg.Routes, *want.RouteCount)
	}

	if want.MinLevel != "" {
		wantRank, ok := levelRank[want.MinLevel]
		require.True(t, ok, "min_level lạ trong fixture: %s", want.MinLevel)
		assert.GreaterOrEqual(t, levelRank[msg.Confidence.Level], wantRank,
			"kỳ vọng tối thiểu %s, nhận được %s", want.MinLevel, msg.Confidence.Level)
	}
}

// TestGoldenCorpusDeterministic parse lại toàn bộ corpus lần hai và so
// fingerprint, đảm bảo kết quả không phụ thuộc thứ tự hay lần chạy.
func TestGoldenCorpusDeterministic(t *testing.T) {
	p := parser.New(gazetteer.New(), zap.NewNop())
	cases := loadGoldenCases(t)

	first := make(map[string]string, len(cases))
	for _, tc := range cases {
		first[tc.Name] = p.Parse(tc.Raw).Fingerprint
	}
	for _, tc := range cases {
		assert.Equal(t, first[tc.Name], p.Parse(tc.Raw).Fingerprint, "case %s", tc.Name)
	}
}
