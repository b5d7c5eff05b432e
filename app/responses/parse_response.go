package responses

import (
	"github.com/freight-parser/app/models"
)

// ParseMessageResponse response parse tin nhắn đơn lẻ
type ParseMessageResponse struct {
	Result           *models.ParsedMessage `json:"result"`             // Kết quả parse
	GazetteerVersion string                `json:"gazetteer_version"`  // Phiên bản gazetteer
	ProcessingTimeMs int64                 `json:"processing_time_ms"` // Thời gian xử lý (ms)
	CacheHit         bool                  `json:"cache_hit"`          // Có hit cache không
}

// BatchParseResponse response parse hàng loạt tin nhắn
type BatchParseResponse struct {
	JobID            string `json:"job_id"`            // ID của job
	EstimatedSeconds int    `json:"estimated_seconds"` // Thời gian ước tính (giây)
	TotalMessages    int    `json:"total_messages"`    // Tổng số tin nhắn
	Message          string `json:"message"`           // Thông báo
}

// JobStatusResponse response trạng thái job
type JobStatusResponse struct {
	JobID              string  `json:"job_id"`              // ID của job
	Status             string  `json:"status"`              // Trạng thái job
	Progress           float64 `json:"progress"`            // Tiến độ (0.0 - 1.0)
	Processed          int     `json:"processed"`           // Số tin nhắn đã xử lý
	Total              int     `json:"total"`               // Tổng số tin nhắn
	EstimatedRemaining int     `json:"estimated_remaining"` // Thời gian còn lại ước tính (giây)
	Message            string  `json:"message"`             // Thông báo
}

// JobStatus constants
const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

// ReviewListResponse response danh sách review
type ReviewListResponse struct {
	Reviews []models.ParseReview `json:"reviews"` // Danh sách review
	Total   int64                `json:"total"`   // Tổng số review
	Pending int64                `json:"pending"` // Số review đang chờ
	Limit   int                  `json:"limit"`   // Giới hạn số lượng
	Offset  int                  `json:"offset"`  // Offset
}

// ReviewActionResponse response thao tác review
type ReviewActionResponse struct {
	Success     bool   `json:"success"`     // Thao tác có thành công không
	Fingerprint string `json:"fingerprint"` // Fingerprint của review
	Action      string `json:"action"`      // Hành động thực hiện
	Message     string `json:"message"`     // Thông báo
	UpdatedAt   string `json:"updated_at"`  // Thời gian cập nhật
}

// AliasListResponse response danh sách alias đã học
type AliasListResponse struct {
	Aliases []models.LearnedAlias `json:"aliases"` // Danh sách alias
	Total   int64                 `json:"total"`   // Tổng số alias
}

// PlaceSearchResponse response tìm kiếm địa danh
type PlaceSearchResponse struct {
	Places           []models.PlaceDoc `json:"places"`             // Danh sách địa danh khớp
	Query            string            `json:"query"`              // Truy vấn gốc
	Total            int               `json:"total"`              // Số kết quả trả về
	ProcessingTimeMs int64             `json:"processing_time_ms"` // Thời gian xử lý (ms)
}

// InvalidateCacheResponse response xoá cache theo phiên bản gazetteer
type InvalidateCacheResponse struct {
	GazetteerVersion string `json:"gazetteer_version"` // Phiên bản gazetteer bị xoá
	MatchedCount     int64  `json:"matched_count"`     // Số bản ghi khớp
	DeletedCount     int64  `json:"deleted_count"`     // Số bản ghi đã xoá
	DryRun           bool   `json:"dry_run"`           // Có phải dry run không
	Message          string `json:"message"`           // Thông báo
}

// ReindexResponse response rebuild index tìm kiếm
type ReindexResponse struct {
	DocumentsIndexed int    `json:"documents_indexed"`  // Số document đã index
	ProcessingTimeMs int64  `json:"processing_time_ms"` // Thời gian xử lý (ms)
	Message          string `json:"message"`            // Thông báo
}

// ErrorResponse response lỗi
type ErrorResponse struct {
	Error     string      `json:"error"`                // Mã lỗi
	Message   string      `json:"message"`              // Thông báo lỗi
	Details   interface{} `json:"details,omitempty"`    // Chi tiết lỗi
	Timestamp string      `json:"timestamp"`            // Thời gian xảy ra lỗi
	RequestID string      `json:"request_id,omitempty"` // ID của request
}

// SuccessResponse response thành công
type SuccessResponse struct {
	Success   bool        `json:"success"`        // Có thành công không
	Message   string      `json:"message"`        // Thông báo
	Data      interface{} `json:"data,omitempty"` // Dữ liệu
	Timestamp string      `json:"timestamp"`      // Thời gian
}

// HealthCheckResponse response kiểm tra sức khỏe
type HealthCheckResponse struct {
	Status    string            `json:"status"`    // Trạng thái sức khỏe
	Timestamp string            `json:"timestamp"` // Thời gian kiểm tra
	Uptime    string            `json:"uptime"`    // Thời gian hoạt động
	Version   string            `json:"version"`   // Phiên bản service
	Services  map[string]string `json:"services"`  // Trạng thái các service
}

// SystemStatsResponse response thống kê hệ thống
type SystemStatsResponse struct {
	CacheHitRate    float64       `json:"cache_hit_rate"`    // Tỷ lệ hit cache
	TotalProcessed  int64         `json:"total_processed"`   // Tổng số tin nhắn đã xử lý
	TotalCached     int64         `json:"total_cached"`      // Tổng số bản ghi trong cache
	ReviewQueueSize int64         `json:"review_queue_size"` // Số lượng review đang chờ
	SystemInfo      SystemInfo    `json:"system_info"`       // Thông tin hệ thống
	DatabaseStats   DatabaseStats `json:"database_stats"`    // Thống kê database
}

// SystemInfo thông tin hệ thống
type SystemInfo struct {
	GazetteerVersion string                 `json:"gazetteer_version"` // Phiên bản gazetteer
	Environment      string                 `json:"environment"`       // Môi trường
	Uptime           string                 `json:"uptime"`            // Thời gian hoạt động
	MemoryUsage      map[string]interface{} `json:"memory_usage"`      // Sử dụng memory
	NumGoroutine     int                    `json:"num_goroutine"`     // Số goroutine đang chạy
}

// DatabaseStats thống kê database
type DatabaseStats struct {
	ParseCache     int64 `json:"parse_cache"`     // Số lượng parse cache
	ParseReviews   int64 `json:"parse_reviews"`   // Số lượng parse review
	LearnedAliases int64 `json:"learned_aliases"` // Số lượng learned aliases
}
