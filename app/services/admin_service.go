package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/search"
)

// AdminService service quản lý admin functions
type AdminService struct {
	db        *mongo.Database
	cache     ICacheService         // nil khi chạy không cache
	searcher  *search.PlaceSearcher // nil khi không có Meilisearch
	gaz       *gazetteer.Gazetteer
	logger    *zap.Logger
	startTime time.Time
}

// SystemStats thống kê hệ thống
type SystemStats struct {
	CacheHitRate    float64                `json:"cache_hit_rate"`
	TotalProcessed  int64                  `json:"total_processed"`
	TotalCached     int64                  `json:"total_cached"`
	ReviewQueueSize int64                  `json:"review_queue_size"`
	Uptime          string                 `json:"uptime"`
	MemoryUsage     map[string]interface{} `json:"memory_usage"`
	NumGoroutine    int                    `json:"num_goroutine"`
	DatabaseStats   DatabaseStats          `json:"database_stats"`
}

// DatabaseStats thống kê database
type DatabaseStats struct {
	ParseCache     int64 `json:"parse_cache"`
	ParseReviews   int64 `json:"parse_reviews"`
	LearnedAliases int64 `json:"learned_aliases"`
}

// InvalidateResult kết quả invalidate cache
type InvalidateResult struct {
	GazetteerVersion string `json:"gazetteer_version"`
	MatchedCount     int64  `json:"matched_count"`
	DeletedCount     int64  `json:"deleted_count"`
	DryRun           bool   `json:"dry_run"`
}

// ReindexResult kết quả rebuild index tìm kiếm
type ReindexResult struct {
	DocumentsIndexed int   `json:"documents_indexed"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// NewAdminService tạo mới AdminService
func NewAdminService(db *mongo.Database, cache ICacheService, searcher *search.PlaceSearcher, gaz *gazetteer.Gazetteer, logger *zap.Logger) *AdminService {
	return &AdminService{
		db:        db,
		cache:     cache,
		searcher:  searcher,
		gaz:       gaz,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetSystemStats lấy thống kê hệ thống
func (as *AdminService) GetSystemStats(ctx context.Context) (*SystemStats, error) {
	dbStats, err := as.getDatabaseStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("lỗi lấy database stats: %w", err)
	}

	pendingReviews, err := as.db.Collection("parse_reviews").
		CountDocuments(ctx, bson.M{"status": models.ReviewStatusPending})
	if err != nil {
		return nil, fmt.Errorf("lỗi đếm pending reviews: %w", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memoryUsage := map[string]interface{}{
		"alloc_mb":       bToMb(m.Alloc),
		"total_alloc_mb": bToMb(m.TotalAlloc),
		"sys_mb":         bToMb(m.Sys),
		"num_gc":         m.NumGC,
	}

	stats := &SystemStats{
		TotalProcessed:  dbStats.ParseCache,
		TotalCached:     dbStats.ParseCache,
		ReviewQueueSize: pendingReviews,
		Uptime:          time.Since(as.startTime).Round(time.Second).String(),
		MemoryUsage:     memoryUsage,
		NumGoroutine:    runtime.NumGoroutine(),
		DatabaseStats:   *dbStats,
	}

	if as.cache != nil {
		cacheStats, err := as.cache.GetStats(ctx)
		if err != nil {
			as.logger.Warn("Lỗi lấy cache stats", zap.Error(err))
		} else {
			stats.CacheHitRate = cacheStats.HitRate
			stats.TotalCached = cacheStats.TotalItems
		}
	}

	return stats, nil
}

// getDatabaseStats lấy thống kê database
func (as *AdminService) getDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	stats := &DatabaseStats{}

	count, err := as.db.Collection("parse_cache").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.ParseCache = count

	count, err = as.db.Collection("parse_reviews").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.ParseReviews = count

	count, err = as.db.Collection("learned_aliases").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.LearnedAliases = count

	return stats, nil
}

// InvalidateCache xoá các bản ghi cache parse bằng gazetteer version
// khác version đang chạy. dryRun chỉ đếm, không xoá.
func (as *AdminService) InvalidateCache(ctx context.Context, gazetteerVersion string, dryRun bool) (*InvalidateResult, error) {
	if gazetteerVersion == "" {
		gazetteerVersion = gazetteer.DataVersion
	}

	filter := bson.M{"gazetteer_version": bson.M{"$ne": gazetteerVersion}}
	matched, err := as.db.Collection("parse_cache").CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("lỗi đếm bản ghi cần invalidate: %w", err)
	}

	result := &InvalidateResult{
		GazetteerVersion: gazetteerVersion,
		MatchedCount:     matched,
		DryRun:           dryRun,
	}

	if dryRun {
		return result, nil
	}

	if as.cache != nil {
		if err := as.cache.InvalidateByGazetteerVersion(ctx, gazetteerVersion); err != nil {
			return nil, fmt.Errorf("lỗi invalidate cache: %w", err)
		}
	}
	result.DeletedCount = matched

	as.logger.Info("Cache invalidated",
		zap.String("gazetteer_version", gazetteerVersion),
		zap.Int64("deleted_count", matched))

	return result, nil
}

// ExportData export dữ liệu để backup. Tỉnh và huyện lấy từ gazetteer
// compiled-in, alias lấy từ MongoDB.
func (as *AdminService) ExportData(ctx context.Context, dataType string, limit int) ([]byte, error) {
	switch dataType {
	case "provinces", "districts":
		wantKind := models.PlaceKindProvince
		if dataType == "districts" {
			wantKind = models.PlaceKindDistrict
		}

		docs := search.DocsFromGazetteer(as.gaz)
		filtered := make([]models.PlaceDoc, 0, len(docs))
		for _, doc := range docs {
			if doc.Kind == wantKind {
				filtered = append(filtered, doc)
			}
			if limit > 0 && len(filtered) >= limit {
				break
			}
		}
		return json.MarshalIndent(filtered, "", "  ")

	case "aliases":
		findOptions := options.Find().SetLimit(int64(limit))
		cursor, err := as.db.Collection("learned_aliases").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			return nil, fmt.Errorf("lỗi query aliases: %w", err)
		}
		defer cursor.Close(ctx)

		var results []models.LearnedAlias
		if err := cursor.All(ctx, &results); err != nil {
			return nil, fmt.Errorf("lỗi decode aliases: %w", err)
		}
		return json.MarshalIndent(results, "", "  ")

	default:
		return nil, errors.New("không hỗ trợ loại dữ liệu này")
	}
}

// ReindexPlaces rebuild settings và seed lại toàn bộ index địa danh
// từ gazetteer compiled-in.
func (as *AdminService) ReindexPlaces(ctx context.Context) (*ReindexResult, error) {
	if as.searcher == nil {
		return nil, errors.New("meilisearch không được cấu hình")
	}

	startTime := time.Now()

	if err := as.searcher.BuildIndexes(); err != nil {
		return nil, fmt.Errorf("lỗi build Meilisearch indexes: %w", err)
	}

	docs := search.DocsFromGazetteer(as.gaz)
	if _, err := as.searcher.SeedData(docs); err != nil {
		return nil, fmt.Errorf("lỗi seed data vào Meilisearch: %w", err)
	}

	processingTime := time.Since(startTime)

	as.logger.Info("Place index rebuilt",
		zap.Int("documents", len(docs)),
		zap.Duration("processing_time", processingTime))

	return &ReindexResult{
		DocumentsIndexed: len(docs),
		ProcessingTimeMs: processingTime.Milliseconds(),
	}, nil
}

// Helper functions
func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
