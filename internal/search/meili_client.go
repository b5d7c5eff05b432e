package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
)

// FilterKind creates a simple kind filter.
func FilterKind(kind string) string {
	return fmt.Sprintf("kind = %q", kind)
}

// FilterKindProvince creates a filter string for kind and province_code.
func FilterKindProvince(kind string, provinceCode int) string {
	if provinceCode <= 0 {
		return fmt.Sprintf("kind = %q", kind)
	}
	return fmt.Sprintf("kind = %q AND province_code = %d", kind, provinceCode)
}

// DocsFromGazetteer flattens the gazetteer into index documents, provinces
// first and then districts. Document IDs use hyphens only because
// Meilisearch rejects IDs with other punctuation.
func DocsFromGazetteer(g *gazetteer.Gazetteer) []models.PlaceDoc {
	now := time.Now().UTC()
	provinces := g.Provinces()
	districts := g.Districts()

	docs := make([]models.PlaceDoc, 0, len(provinces)+len(districts))
	for _, p := range provinces {
		docs = append(docs, models.PlaceDoc{
			ID:               fmt.Sprintf("p-%d", p.Code),
			Kind:             models.PlaceKindProvince,
			Name:             p.Name,
			NormalizedName:   normalizer.NormalizeLocationName(p.Name),
			ProvinceName:     p.Name,
			ProvinceCode:     p.Code,
			Region:           p.Region,
			Aliases:          p.Aliases,
			GazetteerVersion: gazetteer.DataVersion,
			UpdatedAt:        now,
		})
	}

	for _, d := range districts {
		doc := models.PlaceDoc{
			ID:               fmt.Sprintf("d-%d-%s", d.ProvinceCode, strings.ReplaceAll(d.NormalizedName, " ", "-")),
			Kind:             models.PlaceKindDistrict,
			Name:             d.Name,
			NormalizedName:   d.NormalizedName,
			ProvinceCode:     d.ProvinceCode,
			IsLogisticsHub:   d.IsLogisticsHub,
			GazetteerVersion: gazetteer.DataVersion,
			UpdatedAt:        now,
		}
		if p, ok := g.ProvinceByCode(d.ProvinceCode); ok {
			doc.ProvinceName = p.Name
			doc.Region = p.Region
		}
		docs = append(docs, doc)
	}
	return docs
}
