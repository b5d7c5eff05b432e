package parser

import (
	"github.com/freight-parser/app/models"
)

// Weights are the per-field contributions to the confidence score. The
// two route halves dominate because a freight record without them is
// not actionable.
type Weights struct {
	Origin       float64
	Destination  float64
	Vehicle      float64
	Phone        float64
	Weight       float64
	Contact      float64
	CargoType    float64
	BodyType     float64
	RouteBonus   float64
	ContactBonus float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Origin:       0.25,
		Destination:  0.25,
		Vehicle:      0.15,
		Phone:        0.15,
		Weight:       0.05,
		Contact:      0.05,
		CargoType:    0.05,
		BodyType:     0.05,
		RouteBonus:   0.10,
		ContactBonus: 0.05,
	}
}

// Scorer turns field presence into a weighted score and a discrete
// level. The score is a deterministic function of which fields are
// populated; extraction order never matters.
type Scorer struct {
	w Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Calculate scores the populated fields of the message. The level is
// rule-based on top of the raw score: a complete route with a vehicle
// or phone is HIGH regardless of what else is missing, because such a
// record is already dispatchable.
func (s *Scorer) Calculate(msg *models.ParsedMessage) models.ConfidenceInfo {
	hasOrigin := msg.Origin != nil
	hasDestination := msg.Destination != nil
	hasVehicle := msg.Vehicle != nil && msg.Vehicle.Type != ""
	hasBody := msg.Vehicle != nil && msg.Vehicle.BodyType != ""
	hasPhone := len(msg.Phones) > 0
	hasWeight := msg.Weight != nil
	hasContact := msg.Contact != nil && msg.Contact.Name != ""
	hasCargo := msg.CargoType != ""

	factors := make(map[string]float64)
	score := 0.0
	add := func(key string, present bool, weight float64) {
		if present {
			factors[key] = weight
			score += weight
		}
	}

	add(models.FactorOrigin, hasOrigin, s.w.Origin)
	add(models.FactorDestination, hasDestination, s.w.Destination)
	add(models.FactorVehicle, hasVehicle, s.w.Vehicle)
	add(models.FactorPhone, hasPhone, s.w.Phone)
	add(models.FactorWeight, hasWeight, s.w.Weight)
	add(models.FactorContact, hasContact, s.w.Contact)
	add(models.FactorCargoType, hasCargo, s.w.CargoType)
	add(models.FactorBodyType, hasBody, s.w.BodyType)
	add(models.FactorRouteBonus, hasOrigin && hasDestination, s.w.RouteBonus)
	add(models.FactorContactBonus, hasContact && hasReachablePhone(msg.Phones), s.w.ContactBonus)

	if score > 1.0 {
		score = 1.0
	}

	level := s.level(score, hasOrigin, hasDestination, hasVehicle, hasPhone, len(msg.MentionedLocations))

	return models.ConfidenceInfo{Score: score, Level: level, Factors: factors}
}

// hasReachablePhone reports whether at least one phone shows enough
// digits to be dialed back. Masked numbers keep x for hidden digits, so
// a digit count is sufficient; under 7 visible digits the number cannot
// identify a line.
func hasReachablePhone(phones []models.ParsedPhone) bool {
	for _, ph := range phones {
		if !ph.IsMasked {
			return true
		}
		digits := 0
		for _, r := range ph.Number {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return true
		}
	}
	return false
}

func (s *Scorer) level(score float64, hasOrigin, hasDestination, hasVehicle, hasPhone bool, locations int) string {
	switch {
	case hasOrigin && hasDestination && (hasVehicle || hasPhone):
		return models.ConfidenceHigh
	case score >= 0.7:
		return models.ConfidenceHigh
	case hasOrigin && hasDestination:
		return models.ConfidenceMedium
	case hasVehicle && locations > 0:
		return models.ConfidenceMedium
	case score >= 0.4:
		return models.ConfidenceMedium
	case hasPhone || locations > 0:
		return models.ConfidenceLow
	default:
		return models.ConfidenceVeryLow
	}
}
