package controllers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/app/responses"
	"github.com/freight-parser/app/services"
	"github.com/freight-parser/helpers/utils"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/search"
)

// ServiceVersion phiên bản API, trả về trong health check
const ServiceVersion = "1.0.0"

// ParseController controller xử lý các request parse tin nhắn vận tải
type ParseController struct {
	parseService *services.ParseService
	cacheService services.ICacheService // nil khi chạy không cache
	searcher     *search.PlaceSearcher  // nil khi Meilisearch tắt
	logger       *zap.Logger
}

// NewParseController tạo mới ParseController
func NewParseController(parseService *services.ParseService, cacheService services.ICacheService, searcher *search.PlaceSearcher, logger *zap.Logger) *ParseController {
	return &ParseController{
		parseService: parseService,
		cacheService: cacheService,
		searcher:     searcher,
		logger:       logger,
	}
}

// ParseMessage parse một tin nhắn đơn lẻ.
// Cache-first nằm trong service, controller chỉ bind request và trả kết quả.
func (pc *ParseController) ParseMessage(c *gin.Context) {
	var req requests.ParseMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	startTime := time.Now()

	result, cacheHit, err := pc.parseService.ParseMessage(c.Request.Context(), req.Message, req.Options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "PARSE_ERROR",
			Message: "Lỗi parse tin nhắn: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.ParseMessageResponse{
		Result:           result,
		GazetteerVersion: gazetteer.DataVersion,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         cacheHit,
	})
}

// BatchParse parse hàng loạt tin nhắn qua background job
func (pc *ParseController) BatchParse(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	// Kiểm tra giới hạn số lượng
	maxMessages := config.C.Parser.BatchMaxMessages
	if maxMessages <= 0 {
		maxMessages = 10000
	}
	if len(req.Messages) > maxMessages {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "TOO_MANY_MESSAGES",
			Message: "Số lượng tin nhắn vượt quá giới hạn (" + strconv.Itoa(maxMessages) + ")",
		})
		return
	}

	// Tạo job xử lý
	jobID := utils.GenerateUUID()
	estimatedTime := pc.parseService.EstimateBatchProcessingTime(len(req.Messages))

	// Khởi chạy job trong background
	go pc.parseService.ProcessBatchJob(jobID, req.Messages, req.Options)

	c.JSON(http.StatusAccepted, responses.BatchParseResponse{
		JobID:            jobID,
		EstimatedSeconds: estimatedTime,
		TotalMessages:    len(req.Messages),
		Message:          "Job đã được tạo và đang xử lý",
	})
}

// GetJobStatus lấy trạng thái job
func (pc *ParseController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("jobID")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_JOB_ID",
			Message: "Thiếu Job ID",
		})
		return
	}

	status, err := pc.parseService.GetJobStatus(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "JOB_NOT_FOUND",
			Message: "Không tìm thấy job: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.JobStatusResponse{
		JobID:              jobID,
		Status:             status.Status,
		Progress:           status.Progress,
		Processed:          status.Processed,
		Total:              status.Total,
		EstimatedRemaining: status.EstimatedRemaining,
		Message:            status.Message,
	})
}

// GetJobResults lấy kết quả job với hỗ trợ NDJSON + gzip streaming
func (pc *ParseController) GetJobResults(c *gin.Context) {
	jobID := c.Param("jobID")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_JOB_ID",
			Message: "Thiếu Job ID",
		})
		return
	}

	// Kiểm tra format yêu cầu
	format := c.Query("format")
	gzipEnabled := c.Query("gzip") == "1"

	if format == "ndjson" {
		// Stream NDJSON results
		pc.streamNDJSONResults(c, jobID, gzipEnabled)
		return
	}

	// Default JSON response
	results, err := pc.parseService.GetJobResults(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "JOB_NOT_FOUND",
			Message: "Không tìm thấy job: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "Lấy kết quả thành công",
		Data:    results,
	})
}

// SuggestPlaces tìm địa danh qua Meilisearch (typo-tolerant).
// Phục vụ tooling review và API consumer, không nằm trên đường parse.
func (pc *ParseController) SuggestPlaces(c *gin.Context) {
	if pc.searcher == nil {
		c.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
			Error:   "SEARCH_DISABLED",
			Message: "Meilisearch không được cấu hình",
		})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_QUERY",
			Message: "Thiếu tham số q",
		})
		return
	}

	limit := 10
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}
	provinceCode := 0
	if code, err := strconv.Atoi(c.Query("province_code")); err == nil && code > 0 {
		provinceCode = code
	}

	startTime := time.Now()

	var places []models.PlaceDoc
	var err error
	switch c.Query("kind") {
	case "province":
		places, err = pc.searcher.SearchProvinces(query, limit)
	case "district":
		places, err = pc.searcher.SearchDistricts(query, provinceCode, limit)
	default:
		places, err = pc.searcher.Search(query, limit)
	}
	if err != nil {
		pc.logger.Error("Lỗi search địa danh", zap.Error(err), zap.String("query", query))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEARCH_ERROR",
			Message: "Lỗi tìm địa danh: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.PlaceSearchResponse{
		Places:           places,
		Query:            query,
		Total:            len(places),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// HealthCheck kiểm tra sức khỏe service
func (pc *ParseController) HealthCheck(c *gin.Context) {
	uptime := time.Since(pc.parseService.GetStartTime())

	servicesMap := map[string]string{
		"parser": "ok",
		"cache":  "disabled",
		"search": "disabled",
	}
	if pc.cacheService != nil {
		servicesMap["cache"] = "ok"
	}
	if pc.searcher != nil {
		servicesMap["search"] = "ok"
	}

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   ServiceVersion,
		Services:  servicesMap,
	})
}

// Readiness probe: cache được cấu hình thì phải chạm được
func (pc *ParseController) Readiness(c *gin.Context) {
	if pc.cacheService != nil {
		if _, err := pc.cacheService.GetStats(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
				Error:   "CACHE_UNAVAILABLE",
				Message: "Cache không sẵn sàng: " + err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Liveness probe
func (pc *ParseController) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// streamNDJSONResults stream kết quả theo format NDJSON với hỗ trợ gzip
func (pc *ParseController) streamNDJSONResults(c *gin.Context, jobID string, gzipEnabled bool) {
	// Stream results từ service, check trước khi ghi header
	resultChannel, err := pc.parseService.GetJobResultsStream(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "JOB_NOT_FOUND",
			Message: "Không tìm thấy job: " + err.Error(),
		})
		return
	}

	// Thiết lập headers
	c.Header("Content-Type", "application/x-ndjson")
	if gzipEnabled {
		c.Header("Content-Encoding", "gzip")
	}

	// Tạo writer
	var writer gin.ResponseWriter = c.Writer
	if gzipEnabled {
		gzWriter := gzip.NewWriter(c.Writer)
		defer gzWriter.Close()
		writer = &gzipResponseWriter{
			ResponseWriter: c.Writer,
			gzWriter:       gzWriter,
		}
	}

	encoder := json.NewEncoder(writer)
	for result := range resultChannel {
		if err := encoder.Encode(result); err != nil {
			pc.logger.Error("Lỗi encode NDJSON", zap.Error(err))
			break
		}

		// Flush để đảm bảo data được gửi ngay
		if flusher, ok := writer.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// gzipResponseWriter wrapper cho gzip writer
type gzipResponseWriter struct {
	gin.ResponseWriter
	gzWriter *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzWriter.Write(data)
}

func (w *gzipResponseWriter) Flush() {
	w.gzWriter.Flush()
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
