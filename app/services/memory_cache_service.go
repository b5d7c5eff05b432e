package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/metrics"
)

// memoryItem entry trong memory cache, giữ cả thời điểm lưu để check TTL
type memoryItem struct {
	result   *models.ParsedMessage
	storedAt time.Time
}

// MemoryCacheService cache in-memory dùng LRU, bounded theo size.
// Dùng làm fallback khi Redis và MongoDB không khả dụng.
type MemoryCacheService struct {
	cache *lru.Cache[string, memoryItem]
	ttl   time.Duration

	// Stats
	hits   int64
	misses int64
}

// NewMemoryCacheService tạo mới MemoryCacheService
func NewMemoryCacheService(size int, ttl time.Duration) (*MemoryCacheService, error) {
	cache, err := lru.New[string, memoryItem](size)
	if err != nil {
		return nil, fmt.Errorf("không thể tạo LRU cache: %w", err)
	}

	return &MemoryCacheService{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Get lấy kết quả từ cache
func (mcs *MemoryCacheService) Get(ctx context.Context, fingerprint string) (*models.ParsedMessage, bool, error) {
	item, exists := mcs.cache.Get(fingerprint)
	if !exists {
		atomic.AddInt64(&mcs.misses, 1)
		metrics.CacheMisses.WithLabelValues(metrics.LayerMemory).Inc()
		return nil, false, nil
	}

	// Kiểm tra TTL
	if mcs.ttl > 0 && time.Since(item.storedAt) > mcs.ttl {
		mcs.cache.Remove(fingerprint)
		atomic.AddInt64(&mcs.misses, 1)
		metrics.CacheMisses.WithLabelValues(metrics.LayerMemory).Inc()
		return nil, false, nil
	}

	atomic.AddInt64(&mcs.hits, 1)
	metrics.CacheHits.WithLabelValues(metrics.LayerMemory).Inc()
	return item.result, true, nil
}

// Set lưu kết quả vào cache
func (mcs *MemoryCacheService) Set(ctx context.Context, fingerprint string, result *models.ParsedMessage) error {
	mcs.cache.Add(fingerprint, memoryItem{result: result, storedAt: time.Now()})
	return nil
}

// Delete xóa item khỏi cache
func (mcs *MemoryCacheService) Delete(ctx context.Context, fingerprint string) error {
	mcs.cache.Remove(fingerprint)
	return nil
}

// Clear xóa toàn bộ cache
func (mcs *MemoryCacheService) Clear(ctx context.Context) error {
	mcs.cache.Purge()
	atomic.StoreInt64(&mcs.hits, 0)
	atomic.StoreInt64(&mcs.misses, 0)
	return nil
}

// InvalidateByGazetteerVersion xóa các entry parse bằng gazetteer version khác
func (mcs *MemoryCacheService) InvalidateByGazetteerVersion(ctx context.Context, gazetteerVersion string) error {
	for _, key := range mcs.cache.Keys() {
		item, ok := mcs.cache.Peek(key)
		if !ok {
			continue
		}
		if item.result.GazetteerVersion != gazetteerVersion {
			mcs.cache.Remove(key)
		}
	}
	return nil
}

// GetStats lấy thống kê cache
func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&mcs.hits)
	misses := atomic.LoadInt64(&mcs.misses)

	total := hits + misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}, nil
}

// Exists kiểm tra fingerprint có tồn tại không
func (mcs *MemoryCacheService) Exists(ctx context.Context, fingerprint string) (bool, error) {
	item, ok := mcs.cache.Peek(fingerprint)
	if !ok {
		return false, nil
	}
	if mcs.ttl > 0 && time.Since(item.storedAt) > mcs.ttl {
		return false, nil
	}
	return true, nil
}

// GetTTL lấy TTL còn lại của fingerprint
func (mcs *MemoryCacheService) GetTTL(ctx context.Context, fingerprint string) (time.Duration, error) {
	item, ok := mcs.cache.Peek(fingerprint)
	if !ok {
		return 0, nil
	}

	remaining := mcs.ttl - time.Since(item.storedAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// CleanupExpired xóa các item hết hạn
func (mcs *MemoryCacheService) CleanupExpired() {
	if mcs.ttl <= 0 {
		return
	}
	for _, key := range mcs.cache.Keys() {
		item, ok := mcs.cache.Peek(key)
		if !ok {
			continue
		}
		if time.Since(item.storedAt) > mcs.ttl {
			mcs.cache.Remove(key)
		}
	}
}

// StartCleanupWorker khởi động worker dọn dẹp cache định kỳ
func (mcs *MemoryCacheService) StartCleanupWorker(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			mcs.CleanupExpired()
		}
	}()
}

// Size lấy kích thước cache
func (mcs *MemoryCacheService) Size() int {
	return mcs.cache.Len()
}

// Close đóng kết nối (không cần thiết cho in-memory cache)
func (mcs *MemoryCacheService) Close() error {
	return nil
}
