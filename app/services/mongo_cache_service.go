package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/metrics"
)

// MongoCacheService persistent cache service sử dụng MongoDB + LRU in-memory
type MongoCacheService struct {
	db         *mongo.Database
	collection *mongo.Collection
	l1Cache    *lru.Cache[string, *models.ParsedMessage] // LRU in-memory cache
	logger     *zap.Logger

	// Metrics
	totalHits int64
	totalMiss int64
	l1Hits    int64
	l1Miss    int64
	mongoHits int64
	mongoMiss int64
}

// NewMongoCacheService tạo mới MongoCacheService
func NewMongoCacheService(db *mongo.Database, l1Size int, logger *zap.Logger) (*MongoCacheService, error) {
	// Tạo LRU cache
	l1Cache, err := lru.New[string, *models.ParsedMessage](l1Size)
	if err != nil {
		return nil, fmt.Errorf("không thể tạo LRU cache: %w", err)
	}

	collection := db.Collection("parse_cache")

	// Tạo indexes cho performance
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "fingerprint", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "gazetteer_version", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "created_at", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "last_accessed", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "manually_verified", Value: 1}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = collection.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		logger.Warn("Không thể tạo indexes cho parse_cache", zap.Error(err))
	}

	service := &MongoCacheService{
		db:         db,
		collection: collection,
		l1Cache:    l1Cache,
		logger:     logger,
	}

	return service, nil
}

// Get lấy kết quả parse từ cache (L1 → MongoDB)
func (mcs *MongoCacheService) Get(ctx context.Context, fingerprint string) (*models.ParsedMessage, bool, error) {
	// 1. Thử L1 cache trước (in-memory LRU)
	if result, found := mcs.l1Cache.Get(fingerprint); found {
		atomic.AddInt64(&mcs.l1Hits, 1)
		atomic.AddInt64(&mcs.totalHits, 1)
		metrics.CacheHits.WithLabelValues(metrics.LayerMongo).Inc()
		mcs.logger.Debug("L1 cache hit", zap.String("fingerprint", fingerprint))
		return result, true, nil
	}
	atomic.AddInt64(&mcs.l1Miss, 1)

	// 2. Thử MongoDB persistent cache
	var cacheEntry models.ParseCache
	filter := bson.M{"fingerprint": fingerprint}

	err := mcs.collection.FindOne(ctx, filter).Decode(&cacheEntry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			atomic.AddInt64(&mcs.mongoMiss, 1)
			atomic.AddInt64(&mcs.totalMiss, 1)
			metrics.CacheMisses.WithLabelValues(metrics.LayerMongo).Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lỗi query MongoDB cache: %w", err)
	}

	atomic.AddInt64(&mcs.mongoHits, 1)
	atomic.AddInt64(&mcs.totalHits, 1)
	metrics.CacheHits.WithLabelValues(metrics.LayerMongo).Inc()

	// Update last_accessed và access_count
	go mcs.updateAccessStats(cacheEntry.ID)

	// Lưu vào L1 cache cho lần sau
	result := cacheEntry.Result
	mcs.l1Cache.Add(fingerprint, &result)

	mcs.logger.Debug("MongoDB cache hit", zap.String("fingerprint", fingerprint))

	return &result, true, nil
}

// Set lưu kết quả parse vào cache (L1 + MongoDB)
func (mcs *MongoCacheService) Set(ctx context.Context, fingerprint string, result *models.ParsedMessage) error {
	// 1. Lưu vào L1 cache
	mcs.l1Cache.Add(fingerprint, result)

	// 2. Lưu vào MongoDB persistent cache
	cacheEntry := models.NewParseCache(result)
	cacheEntry.Fingerprint = fingerprint

	// Upsert to MongoDB
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"fingerprint": fingerprint}

	_, err := mcs.collection.ReplaceOne(ctx, filter, cacheEntry, opts)
	if err != nil {
		mcs.logger.Error("Lỗi lưu vào MongoDB cache",
			zap.Error(err),
			zap.String("fingerprint", fingerprint))
		return fmt.Errorf("lỗi lưu vào MongoDB cache: %w", err)
	}

	mcs.logger.Debug("Đã lưu vào cache",
		zap.String("fingerprint", fingerprint),
		zap.Float64("confidence", result.Confidence.Score))

	return nil
}

// Delete xóa kết quả khỏi cache
func (mcs *MongoCacheService) Delete(ctx context.Context, fingerprint string) error {
	// 1. Xóa khỏi L1 cache
	mcs.l1Cache.Remove(fingerprint)

	// 2. Xóa khỏi MongoDB
	filter := bson.M{"fingerprint": fingerprint}

	_, err := mcs.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("lỗi xóa khỏi MongoDB cache: %w", err)
	}

	return nil
}

// Clear xóa tất cả cache
func (mcs *MongoCacheService) Clear(ctx context.Context) error {
	// 1. Clear L1 cache
	mcs.l1Cache.Purge()

	// 2. Clear MongoDB cache
	_, err := mcs.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("lỗi clear MongoDB cache: %w", err)
	}

	// Reset metrics
	atomic.StoreInt64(&mcs.totalHits, 0)
	atomic.StoreInt64(&mcs.totalMiss, 0)
	atomic.StoreInt64(&mcs.l1Hits, 0)
	atomic.StoreInt64(&mcs.l1Miss, 0)
	atomic.StoreInt64(&mcs.mongoHits, 0)
	atomic.StoreInt64(&mcs.mongoMiss, 0)

	return nil
}

// InvalidateByGazetteerVersion xóa các record parse bằng gazetteer version khác
func (mcs *MongoCacheService) InvalidateByGazetteerVersion(ctx context.Context, gazetteerVersion string) error {
	// 1. Clear toàn bộ L1 cache (đơn giản nhất)
	mcs.l1Cache.Purge()

	// 2. Xóa records trong MongoDB có gazetteer_version cũ
	filter := bson.M{"gazetteer_version": bson.M{"$ne": gazetteerVersion}}

	result, err := mcs.collection.DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("lỗi invalidate cache theo gazetteer version: %w", err)
	}

	mcs.logger.Info("Đã invalidate cache",
		zap.String("gazetteer_version", gazetteerVersion),
		zap.Int64("deleted_count", result.DeletedCount))

	return nil
}

// GetStats lấy thống kê cache
func (mcs *MongoCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	// MongoDB cache stats
	mongoCount, err := mcs.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("lỗi đếm documents trong MongoDB cache: %w", err)
	}

	totalHits := atomic.LoadInt64(&mcs.totalHits)
	totalMiss := atomic.LoadInt64(&mcs.totalMiss)

	// Calculate hit rate
	total := totalHits + totalMiss
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(totalHits) / float64(total)
	}

	stats := &CacheStats{
		HitRate:    hitRate,
		TotalHits:  totalHits,
		TotalMiss:  totalMiss,
		TotalItems: mongoCount,
	}

	mcs.logger.Debug("Cache stats",
		zap.Float64("hit_rate", hitRate),
		zap.Int64("total_hits", totalHits),
		zap.Int64("total_miss", totalMiss),
		zap.Int("l1_size", mcs.l1Cache.Len()),
		zap.Int64("mongo_count", mongoCount))

	return stats, nil
}

// Exists kiểm tra fingerprint có tồn tại không
func (mcs *MongoCacheService) Exists(ctx context.Context, fingerprint string) (bool, error) {
	// Check L1 first
	if mcs.l1Cache.Contains(fingerprint) {
		return true, nil
	}

	// Check MongoDB
	filter := bson.M{"fingerprint": fingerprint}

	count, err := mcs.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("lỗi check exists trong MongoDB: %w", err)
	}

	return count > 0, nil
}

// GetTTL lấy TTL còn lại của fingerprint (MongoDB cache không có TTL, luôn trả về 0)
func (mcs *MongoCacheService) GetTTL(ctx context.Context, fingerprint string) (time.Duration, error) {
	return 0, nil
}

// Close đóng kết nối. MongoDB connection được quản lý bởi caller.
func (mcs *MongoCacheService) Close() error {
	return nil
}

// updateAccessStats cập nhật thống kê truy cập (async)
func (mcs *MongoCacheService) updateAccessStats(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{"last_accessed": time.Now()},
		"$inc": bson.M{"access_count": 1},
	}

	_, err := mcs.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		mcs.logger.Warn("Lỗi update access stats", zap.Error(err))
	}
}

// GetL1Stats lấy thống kê L1 cache
func (mcs *MongoCacheService) GetL1Stats() map[string]interface{} {
	return map[string]interface{}{
		"l1_size":    mcs.l1Cache.Len(),
		"l1_hits":    atomic.LoadInt64(&mcs.l1Hits),
		"l1_miss":    atomic.LoadInt64(&mcs.l1Miss),
		"mongo_hits": atomic.LoadInt64(&mcs.mongoHits),
		"mongo_miss": atomic.LoadInt64(&mcs.mongoMiss),
		"total_hits": atomic.LoadInt64(&mcs.totalHits),
		"total_miss": atomic.LoadInt64(&mcs.totalMiss),
	}
}

// WarmUp làm nóng L1 cache từ MongoDB theo access_count
func (mcs *MongoCacheService) WarmUp(ctx context.Context, limit int) error {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "access_count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := mcs.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("lỗi warm up cache: %w", err)
	}
	defer cursor.Close(ctx)

	count := 0
	for cursor.Next(ctx) {
		var cacheEntry models.ParseCache
		if err := cursor.Decode(&cacheEntry); err != nil {
			mcs.logger.Warn("Lỗi decode cache entry trong warm up", zap.Error(err))
			continue
		}

		result := cacheEntry.Result
		mcs.l1Cache.Add(cacheEntry.Fingerprint, &result)
		count++
	}

	mcs.logger.Info("Cache warm up hoàn thành",
		zap.Int("loaded_items", count),
		zap.Int("l1_size", mcs.l1Cache.Len()))

	return nil
}
