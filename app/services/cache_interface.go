package services

import (
	"context"
	"time"

	"github.com/freight-parser/app/models"
)

// CacheStats thống kê cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService interface định nghĩa các method cần thiết cho cache.
// Key luôn là fingerprint của tin nhắn đã chuẩn hoá.
type ICacheService interface {
	// Get lấy kết quả parse từ cache
	Get(ctx context.Context, fingerprint string) (*models.ParsedMessage, bool, error)

	// Set lưu kết quả parse vào cache
	Set(ctx context.Context, fingerprint string, result *models.ParsedMessage) error

	// Delete xóa kết quả khỏi cache
	Delete(ctx context.Context, fingerprint string) error

	// Clear xóa tất cả cache
	Clear(ctx context.Context) error

	// InvalidateByGazetteerVersion invalidate cache theo gazetteer version
	InvalidateByGazetteerVersion(ctx context.Context, gazetteerVersion string) error

	// GetStats lấy thống kê cache
	GetStats(ctx context.Context) (*CacheStats, error)

	// Exists kiểm tra fingerprint có tồn tại không
	Exists(ctx context.Context, fingerprint string) (bool, error)

	// GetTTL lấy TTL còn lại của fingerprint
	GetTTL(ctx context.Context, fingerprint string) (time.Duration, error)

	// Close đóng kết nối (nếu cần)
	Close() error
}
