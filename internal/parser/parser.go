// Package parser is the facade over the extraction pipeline: one call
// turns a raw freight message into a ParsedMessage. Parsing never
// fails; missing fields stay absent and problems surface as warnings
// or structured flags on the result.
package parser

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/helpers/utils"
	"github.com/freight-parser/internal/extract"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
	"github.com/freight-parser/internal/route"
)

// Parser orchestrates the extractors, the route assembler, the
// classifier and the scorer. It is stateless after construction and
// safe for concurrent use.
type Parser struct {
	gaz        *gazetteer.Gazetteer
	norm       *normalizer.Normalizer
	locations  *extract.LocationExtractor
	phones     *extract.PhoneExtractor
	vehicles   *extract.VehicleExtractor
	weights    *extract.WeightExtractor
	contacts   *extract.ContactExtractor
	keywords   *extract.KeywordExtractor
	assembler  *route.Assembler
	classifier *Classifier
	scorer     *Scorer
	logger     *zap.Logger
}

// New creates a parser with the default scoring weights.
func New(gaz *gazetteer.Gazetteer, logger *zap.Logger) *Parser {
	return NewWithWeights(gaz, DefaultWeights(), logger)
}

// NewWithWeights creates a parser with explicit scoring weights.
func NewWithWeights(gaz *gazetteer.Gazetteer, w Weights, logger *zap.Logger) *Parser {
	return &Parser{
		gaz:        gaz,
		norm:       normalizer.New(),
		locations:  extract.NewLocationExtractor(gaz),
		phones:     extract.NewPhoneExtractor(),
		vehicles:   extract.NewVehicleExtractor(),
		weights:    extract.NewWeightExtractor(),
		contacts:   extract.NewContactExtractor(gaz),
		keywords:   extract.NewKeywordExtractor(),
		assembler:  route.NewAssembler(gaz),
		classifier: NewClassifier(),
		scorer:     NewScorer(w),
		logger:     logger,
	}
}

// Parse converts one raw message into a ParsedMessage.
func (p *Parser) Parse(text string) *models.ParsedMessage {
	normalized := p.norm.NormalizeMessage(text)

	msg := &models.ParsedMessage{
		Raw:              text,
		NormalizedText:   normalized,
		MessageType:      models.MessageTypeUnknown,
		Fingerprint:      utils.Fingerprint(normalized),
		GazetteerVersion: gazetteer.DataVersion,
		ParsedAt:         time.Now().UTC(),
	}

	if strings.TrimSpace(text) == "" {
		msg.Warnings = append(msg.Warnings, "Empty message")
		msg.MentionedLocations = []models.ParsedLocation{}
		msg.Confidence = p.scorer.Calculate(msg)
		return msg
	}

	// 1. Locations, with message-level ambiguity resolution.
	mentions := extract.ResolveAmbiguity(p.locations.ExtractMentions(text))
	msg.MentionedLocations = make([]models.ParsedLocation, 0, len(mentions))
	for _, m := range mentions {
		msg.MentionedLocations = append(msg.MentionedLocations, m.Location)
	}

	// 2. Primary route and the full route list.
	msg.Origin, msg.Destination = p.assembler.DetermineOriginDestination(mentions, text)
	msg.Routes = p.assembler.ExtractAllRoutes(text)

	// 3. Independent field extractors.
	msg.Vehicle = p.vehicles.Extract(text)
	msg.Phones = p.phones.Extract(text)
	msg.Weight = p.weights.Extract(text)
	msg.Contact = p.contacts.Extract(text)
	msg.CargoType = p.keywords.ExtractCargoType(text)
	msg.LoadType = p.keywords.ExtractLoadType(text)
	msg.IsUrgent, msg.UrgencyWords = p.keywords.ExtractUrgency(text)

	// 4. Intent and confidence.
	msg.MessageType = p.classifier.DetermineMessageType(text)
	msg.Confidence = p.scorer.Calculate(msg)

	for _, loc := range msg.MentionedLocations {
		if loc.IsAmbiguous {
			msg.Warnings = append(msg.Warnings, "Ambiguous district: "+loc.DistrictName)
		}
	}

	if p.logger != nil {
		p.logger.Debug("parsed message",
			zap.String("fingerprint", msg.Fingerprint),
			zap.String("message_type", msg.MessageType),
			zap.Float64("confidence", msg.Confidence.Score),
			zap.String("level", msg.Confidence.Level),
			zap.Int("locations", len(msg.MentionedLocations)),
			zap.Int("routes", len(msg.Routes)))
	}
	return msg
}

// ParseBatch parses a list of messages in order. Individual messages
// never fail, so the result always has one entry per input.
func (p *Parser) ParseBatch(texts []string) []*models.ParsedMessage {
	results := make([]*models.ParsedMessage, len(texts))
	for i, text := range texts {
		results[i] = p.Parse(text)
	}
	if p.logger != nil {
		p.logger.Info("parsed batch", zap.Int("total", len(texts)))
	}
	return results
}

// ExtractAllRoutes exposes the multi-route view of a message for
// callers that need every origin/destination pair, not just the
// primary one.
func (p *Parser) ExtractAllRoutes(text string) []models.ExtractedRoute {
	return p.assembler.ExtractAllRoutes(text)
}
