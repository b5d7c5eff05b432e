package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/helpers/utils"
	"github.com/freight-parser/internal/metrics"
	"github.com/freight-parser/internal/normalizer"
	"github.com/freight-parser/internal/parser"
)

// ParseService service xử lý logic parse tin nhắn vận tải
type ParseService struct {
	parser     *parser.Parser
	normalizer *normalizer.Normalizer
	cache      ICacheService  // nil khi chạy không cache
	reviews    *ReviewService // nil khi review queue tắt
	logger     *zap.Logger
	startTime  time.Time
	mu         sync.RWMutex

	// Job management
	jobs       map[string]*JobStatus
	jobResults map[string][]*models.ParsedMessage
}

// JobStatus trạng thái của job
type JobStatus struct {
	JobID              string
	Status             string
	Progress           float64
	Processed          int
	Total              int
	EstimatedRemaining int
	Message            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewParseService tạo mới ParseService
func NewParseService(p *parser.Parser, cache ICacheService, reviews *ReviewService, logger *zap.Logger) *ParseService {
	return &ParseService{
		parser:     p,
		normalizer: normalizer.New(),
		cache:      cache,
		reviews:    reviews,
		logger:     logger,
		startTime:  time.Now(),
		jobs:       make(map[string]*JobStatus),
		jobResults: make(map[string][]*models.ParsedMessage),
	}
}

// ParseMessage parse một tin nhắn, cache-first theo fingerprint.
// Trả về (result, cacheHit, error). Parser không bao giờ fail nên
// error chỉ dành cho các đường hỏng hạ tầng.
func (ps *ParseService) ParseMessage(ctx context.Context, rawMessage string, options requests.ParseOptions) (*models.ParsedMessage, bool, error) {
	start := time.Now()

	fingerprint := utils.Fingerprint(ps.normalizer.NormalizeMessage(rawMessage))

	// 1. Thử cache trước (trừ khi client yêu cầu parse lại).
	// Entry đã được operator sửa tay cũng đi đường này nên cache-first
	// trả về kết quả đã sửa thay vì parse tự động.
	if ps.cache != nil && !options.NoCache {
		cached, found, err := ps.cache.Get(ctx, fingerprint)
		if err != nil {
			ps.logger.Warn("Lỗi đọc cache, tiếp tục parse", zap.Error(err), zap.String("fingerprint", fingerprint))
		} else if found {
			metrics.ParseRequests.WithLabelValues(metrics.OutcomeHit).Inc()
			metrics.ParseDuration.Observe(time.Since(start).Seconds())
			return cached, true, nil
		}
	}

	// 2. Parse
	result := ps.parser.Parse(rawMessage)

	outcome := metrics.OutcomeParsed
	if strings.TrimSpace(rawMessage) == "" {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ParseRequests.WithLabelValues(outcome).Inc()
	metrics.ParseDuration.Observe(time.Since(start).Seconds())

	// 3. Đưa vào review queue nếu confidence dưới ngưỡng
	threshold := config.C.Parser.ReviewThreshold
	if options.MinConfidence > 0 {
		threshold = options.MinConfidence
	}
	if ps.reviews != nil && config.C.Parser.ReviewEnabled && result.Confidence.Score < threshold {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := ps.reviews.Enqueue(bgCtx, result); err != nil {
				ps.logger.Warn("Lỗi enqueue review", zap.Error(err), zap.String("fingerprint", fingerprint))
			}
		}()
	}

	// 4. Lưu vào cache
	if ps.cache != nil && !options.NoCache {
		if err := ps.cache.Set(ctx, fingerprint, result); err != nil {
			ps.logger.Warn("Lỗi lưu cache", zap.Error(err), zap.String("fingerprint", fingerprint))
		}
	}

	return result, false, nil
}

// ExtractRoutes trả về mọi cặp tuyến tìm được trong tin nhắn
func (ps *ParseService) ExtractRoutes(rawMessage string) []models.ExtractedRoute {
	return ps.parser.ExtractAllRoutes(rawMessage)
}

// EstimateBatchProcessingTime ước tính thời gian xử lý batch (giây)
func (ps *ParseService) EstimateBatchProcessingTime(messageCount int) int {
	// Parse thuần in-memory, chi phí chính là ghi cache
	estimatedMs := messageCount * 5
	return estimatedMs / 1000
}

// ProcessBatchJob xử lý job batch trong background
func (ps *ParseService) ProcessBatchJob(jobID string, messages []string, options requests.ParseOptions) {
	metrics.BatchJobsRunning.Inc()
	defer metrics.BatchJobsRunning.Dec()

	jobStart := time.Now()

	// Tạo job status
	ps.mu.Lock()
	ps.jobs[jobID] = &JobStatus{
		JobID:     jobID,
		Status:    "running",
		Progress:  0.0,
		Processed: 0,
		Total:     len(messages),
		Message:   "Đang xử lý...",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	ps.mu.Unlock()

	ctx := context.Background()
	results := make([]*models.ParsedMessage, len(messages))

	for i, message := range messages {
		result, _, err := ps.ParseMessage(ctx, message, options)
		if err != nil || result == nil {
			result = ps.parser.Parse(message)
		}
		results[i] = result

		// Cập nhật progress
		ps.mu.Lock()
		if job, exists := ps.jobs[jobID]; exists {
			job.Processed = i + 1
			job.Progress = float64(i+1) / float64(len(messages))
			job.UpdatedAt = time.Now()

			elapsed := time.Since(jobStart).Seconds()
			perMessage := elapsed / float64(i+1)
			job.EstimatedRemaining = int(perMessage * float64(len(messages)-i-1))

			if i == len(messages)-1 {
				job.Status = "done"
				job.Message = "Hoàn thành xử lý"
				job.EstimatedRemaining = 0
			}
		}
		ps.mu.Unlock()
	}

	// Lưu kết quả
	ps.mu.Lock()
	ps.jobResults[jobID] = results
	ps.mu.Unlock()

	ps.logger.Info("Batch job completed",
		zap.String("job_id", jobID),
		zap.Int("total_messages", len(messages)),
		zap.Duration("took", time.Since(jobStart)))
}

// GetJobStatus lấy trạng thái job
func (ps *ParseService) GetJobStatus(jobID string) (*JobStatus, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	job, exists := ps.jobs[jobID]
	if !exists {
		return nil, errors.New("job không tồn tại")
	}

	return job, nil
}

// GetJobResults lấy kết quả job
func (ps *ParseService) GetJobResults(jobID string) ([]*models.ParsedMessage, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	results, exists := ps.jobResults[jobID]
	if !exists {
		return nil, errors.New("kết quả job không tồn tại")
	}

	return results, nil
}

// GetJobResultsStream lấy kết quả job dưới dạng channel để stream
func (ps *ParseService) GetJobResultsStream(jobID string) (<-chan *models.ParsedMessage, error) {
	results, err := ps.GetJobResults(jobID)
	if err != nil {
		return nil, err
	}

	resultChannel := make(chan *models.ParsedMessage, 100)

	go func() {
		defer close(resultChannel)
		for _, result := range results {
			resultChannel <- result
		}
	}()

	return resultChannel, nil
}

// GetStartTime lấy thời gian khởi động service
func (ps *ParseService) GetStartTime() time.Time {
	return ps.startTime
}

// GetStats lấy thống kê service
func (ps *ParseService) GetStats() map[string]interface{} {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	uptime := time.Since(ps.startTime)

	return map[string]interface{}{
		"uptime_seconds": int64(uptime.Seconds()),
		"start_time":     ps.startTime.Format(time.RFC3339),
		"active_jobs":    len(ps.jobs),
		"status":         "running",
	}
}
