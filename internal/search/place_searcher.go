// Package search wraps Meilisearch for gazetteer place lookup. The
// parser itself never goes through here; the index serves the review
// tooling and API consumers that need free-text place suggestions.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
)

// PlaceSearcher queries the place index. Provinces and districts live
// in one index and are told apart by the kind attribute.
type PlaceSearcher struct {
	client    meilisearch.ServiceManager
	logger    *zap.Logger
	indexName string
	timeout   time.Duration
}

// SearchConfig configures the Meilisearch connection.
type SearchConfig struct {
	Host          string
	APIKey        string
	IndexName     string
	Timeout       time.Duration
	MaxCandidates int
}

// NewPlaceSearcher connects to Meilisearch and verifies it is healthy.
func NewPlaceSearcher(config SearchConfig, logger *zap.Logger) (*PlaceSearcher, error) {
	client := meilisearch.New(config.Host, meilisearch.WithAPIKey(config.APIKey))

	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("meilisearch not reachable: %w", err)
	}

	return &PlaceSearcher{
		client:    client,
		logger:    logger,
		indexName: config.IndexName,
		timeout:   config.Timeout,
	}, nil
}

// Search runs a free-text query over all places.
func (ps *PlaceSearcher) Search(query string, limit int) ([]models.PlaceDoc, error) {
	if query == "" {
		return nil, errors.New("empty query")
	}
	return ps.search(query, "", limit)
}

// SearchProvinces restricts the query to province documents.
func (ps *PlaceSearcher) SearchProvinces(query string, limit int) ([]models.PlaceDoc, error) {
	if query == "" {
		return nil, errors.New("empty query")
	}
	return ps.search(query, FilterKind(models.PlaceKindProvince), limit)
}

// SearchDistricts restricts the query to district documents, optionally
// within one province (provinceCode 0 means any).
func (ps *PlaceSearcher) SearchDistricts(query string, provinceCode int, limit int) ([]models.PlaceDoc, error) {
	if query == "" {
		return nil, errors.New("empty query")
	}
	return ps.search(query, FilterKindProvince(models.PlaceKindDistrict, provinceCode), limit)
}

func (ps *PlaceSearcher) search(query, filter string, limit int) ([]models.PlaceDoc, error) {
	index := ps.client.Index(ps.indexName)

	searchReq := &meilisearch.SearchRequest{
		Limit: int64(limit),
	}
	if filter != "" {
		searchReq.Filter = filter
	}

	result, err := index.Search(query, searchReq)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}

	return ps.parseHits(result), nil
}

// parseHits decodes raw Meilisearch hits into PlaceDoc values. Fields
// that fail a type assertion are left zero rather than failing the
// whole response.
func (ps *PlaceSearcher) parseHits(result *meilisearch.SearchResponse) []models.PlaceDoc {
	docs := make([]models.PlaceDoc, 0, len(result.Hits))

	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}

		doc := models.PlaceDoc{}

		if id, ok := hitMap["id"].(string); ok {
			doc.ID = id
		}
		if kind, ok := hitMap["kind"].(string); ok {
			doc.Kind = kind
		}
		if name, ok := hitMap["name"].(string); ok {
			doc.Name = name
		}
		if normalized, ok := hitMap["normalized_name"].(string); ok {
			doc.NormalizedName = normalized
		}
		if provinceName, ok := hitMap["province_name"].(string); ok {
			doc.ProvinceName = provinceName
		}
		if code, ok := hitMap["province_code"].(float64); ok {
			doc.ProvinceCode = int(code)
		}
		if region, ok := hitMap["region"].(string); ok {
			doc.Region = region
		}
		if hub, ok := hitMap["is_logistics_hub"].(bool); ok {
			doc.IsLogisticsHub = hub
		}
		if version, ok := hitMap["gazetteer_version"].(string); ok {
			doc.GazetteerVersion = version
		}

		if aliasesRaw, ok := hitMap["aliases"]; ok {
			if aliasesSlice, ok := aliasesRaw.([]interface{}); ok {
				for _, alias := range aliasesSlice {
					if aliasStr, ok := alias.(string); ok {
						doc.Aliases = append(doc.Aliases, aliasStr)
					}
				}
			}
		}

		docs = append(docs, doc)
	}

	return docs
}

// BuildIndexes applies the index settings: searchable and filterable
// attributes, ranking, Turkish stop words, and the abbreviation
// synonyms drivers actually type.
func (ps *PlaceSearcher) BuildIndexes() error {
	index := ps.client.Index(ps.indexName)

	task, err := index.UpdateSettings(&meilisearch.Settings{
		SearchableAttributes: []string{"name", "normalized_name", "aliases"},
		FilterableAttributes: []string{"kind", "province_code", "province_name", "region", "is_logistics_hub"},
		SortableAttributes:   []string{"kind", "province_code", "name"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
		StopWords:            []string{"ve", "ile", "icin"},
		Synonyms: map[string][]string{
			"ist":   {"istanbul"},
			"afyon": {"afyonkarahisar"},
			"antep": {"gaziantep"},
			"urfa":  {"sanliurfa"},
			"maras": {"kahramanmaras"},
		},
		TypoTolerance: &meilisearch.TypoTolerance{
			Enabled: true,
			MinWordSizeForTypos: meilisearch.MinWordSizeForTypos{
				OneTypo:  4,
				TwoTypos: 8,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("index settings update failed: %w", err)
	}

	ps.logger.Info("Place index settings applied", zap.Int64("task_uid", task.TaskUID))
	return nil
}

// SeedData pushes place documents into the index in batches of 1000 and
// returns the enqueued task UIDs so callers can wait for indexing.
func (ps *PlaceSearcher) SeedData(docs []models.PlaceDoc) ([]int64, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents to seed")
	}

	index := ps.client.Index(ps.indexName)

	batchSize := 1000
	taskUIDs := make([]int64, 0, len(docs)/batchSize+1)
	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}

		batch := make([]interface{}, 0, end-i)
		for _, doc := range docs[i:end] {
			batch = append(batch, doc)
		}

		task, err := index.AddDocuments(batch, "id")
		if err != nil {
			return nil, fmt.Errorf("seeding batch %d-%d failed: %w", i, end, err)
		}
		taskUIDs = append(taskUIDs, task.TaskUID)

		ps.logger.Info("Seeded place batch",
			zap.Int("from", i),
			zap.Int("to", end),
			zap.Int64("task_uid", task.TaskUID))
	}

	ps.logger.Info("Place seeding complete", zap.Int("total_documents", len(docs)))
	return taskUIDs, nil
}

// UpdateSynonyms replaces the index synonym table. The alias service
// feeds learned aliases here so searches follow what the admin teaches
// the gazetteer.
func (ps *PlaceSearcher) UpdateSynonyms(synonyms map[string][]string) error {
	index := ps.client.Index(ps.indexName)

	task, err := index.UpdateSettings(&meilisearch.Settings{
		Synonyms: synonyms,
	})
	if err != nil {
		return fmt.Errorf("synonym update failed: %w", err)
	}

	ps.logger.Info("Place synonyms updated",
		zap.Int("groups", len(synonyms)),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// WaitForTask polls a task until it settles or the searcher timeout
// elapses. Used by the seed tool, which must not exit mid-index.
func (ps *PlaceSearcher) WaitForTask(taskUID int64) error {
	deadline := time.Now().Add(ps.timeout)

	for {
		task, err := ps.client.GetTask(taskUID)
		if err != nil {
			return fmt.Errorf("task status check failed: %w", err)
		}

		switch task.Status {
		case "succeeded":
			return nil
		case "failed":
			return fmt.Errorf("meilisearch task %d failed: %v", taskUID, task.Error)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("meilisearch task %d still %s after %s", taskUID, task.Status, ps.timeout)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
