package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/metrics"
)

// RedisCacheService cache service sử dụng Redis
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	// Stats
	hits   int64
	misses int64
}

// NewRedisCacheService tạo mới Redis cache service
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("lỗi parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "freight_parser:",
		ttl:    24 * time.Hour, // TTL mặc định 24h
	}, nil
}

// Get lấy kết quả parse từ cache
func (rcs *RedisCacheService) Get(ctx context.Context, fingerprint string) (*models.ParsedMessage, bool, error) {
	cacheKey := rcs.prefix + fingerprint

	val, err := rcs.client.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		atomic.AddInt64(&rcs.misses, 1)
		metrics.CacheMisses.WithLabelValues(metrics.LayerRedis).Inc()
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Lỗi get từ Redis", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	var result models.ParsedMessage
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("Lỗi unmarshal cache data", zap.Error(err))
		return nil, false, err
	}

	atomic.AddInt64(&rcs.hits, 1)
	metrics.CacheHits.WithLabelValues(metrics.LayerRedis).Inc()
	rcs.logger.Debug("Redis cache hit", zap.String("fingerprint", fingerprint))
	return &result, true, nil
}

// Set lưu kết quả parse vào cache
func (rcs *RedisCacheService) Set(ctx context.Context, fingerprint string, result *models.ParsedMessage) error {
	cacheKey := rcs.prefix + fingerprint

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("lỗi marshal cache data: %w", err)
	}

	err = rcs.client.Set(ctx, cacheKey, data, rcs.ttl).Err()
	if err != nil {
		rcs.logger.Error("Lỗi set vào Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}

	rcs.logger.Debug("Đã lưu vào Redis cache", zap.String("fingerprint", fingerprint))
	return nil
}

// Delete xóa fingerprint khỏi cache
func (rcs *RedisCacheService) Delete(ctx context.Context, fingerprint string) error {
	cacheKey := rcs.prefix + fingerprint

	err := rcs.client.Del(ctx, cacheKey).Err()
	if err != nil {
		rcs.logger.Error("Lỗi delete từ Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}

	rcs.logger.Debug("Đã xóa khỏi Redis cache", zap.String("fingerprint", fingerprint))
	return nil
}

// Clear xóa toàn bộ cache
func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	pattern := rcs.prefix + "*"
	keys, err := rcs.client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("lỗi lấy danh sách keys: %w", err)
	}

	if len(keys) > 0 {
		err = rcs.client.Del(ctx, keys...).Err()
		if err != nil {
			return fmt.Errorf("lỗi xóa keys: %w", err)
		}
	}

	rcs.logger.Info("Đã clear Redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// InvalidateByGazetteerVersion xóa cache theo phiên bản gazetteer.
// Key Redis không chứa version nên clear toàn bộ.
func (rcs *RedisCacheService) InvalidateByGazetteerVersion(ctx context.Context, gazetteerVersion string) error {
	return rcs.Clear(ctx)
}

// GetStats lấy thống kê cache
func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&rcs.hits)
	misses := atomic.LoadInt64(&rcs.misses)

	total := hits + misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	// Estimate số items từ pattern
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	totalItems := int64(0)
	if err == nil {
		totalItems = int64(len(keys))
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: totalItems,
	}, nil
}

// Exists kiểm tra fingerprint có tồn tại không
func (rcs *RedisCacheService) Exists(ctx context.Context, fingerprint string) (bool, error) {
	cacheKey := rcs.prefix + fingerprint

	exists, err := rcs.client.Exists(ctx, cacheKey).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

// GetTTL lấy TTL của fingerprint
func (rcs *RedisCacheService) GetTTL(ctx context.Context, fingerprint string) (time.Duration, error) {
	cacheKey := rcs.prefix + fingerprint

	ttl, err := rcs.client.TTL(ctx, cacheKey).Result()
	if err != nil {
		return 0, err
	}

	return ttl, nil
}

// Close đóng kết nối Redis
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}

// SetTTL thiết lập TTL cho service
func (rcs *RedisCacheService) SetTTL(ttl time.Duration) {
	rcs.ttl = ttl
}

// GetClient lấy Redis client (cho debug)
func (rcs *RedisCacheService) GetClient() *redis.Client {
	return rcs.client
}
