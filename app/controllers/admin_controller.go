package controllers

import (
	"errors"
	"fmt"
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
	"github.com/freight-parser/internal/gazetteer"
)

// AdminController controller xử lý các request admin
type AdminController struct {
	adminService  *services.AdminService
	aliasService  *services.AliasService
	reviewService *services.ReviewService
	logger        *zap.Logger
}

// NewAdminController tạo mới AdminController
func NewAdminController(adminService *services.AdminService, aliasService *services.AliasService, reviewService *services.ReviewService, logger *zap.Logger) *AdminController {
	return &AdminController{
		adminService:  adminService,
		aliasService:  aliasService,
		reviewService: reviewService,
		logger:        logger,
	}
}

// GetStats lấy thống kê hệ thống
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.adminService.GetSystemStats(c.Request.Context())
	if err != nil {
		ac.logger.Error("Lỗi lấy stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_ERROR",
			Message: "Lỗi lấy stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SystemStatsResponse{
		CacheHitRate:    stats.CacheHitRate,
		TotalProcessed:  stats.TotalProcessed,
		TotalCached:     stats.TotalCached,
		ReviewQueueSize: stats.ReviewQueueSize,
		SystemInfo: responses.SystemInfo{
			GazetteerVersion: gazetteer.DataVersion,
			Environment:      config.C.Server.Env,
			Uptime:           stats.Uptime,
			MemoryUsage:      stats.MemoryUsage,
			NumGoroutine:     stats.NumGoroutine,
		},
		DatabaseStats: responses.DatabaseStats{
			ParseCache:     stats.DatabaseStats.ParseCache,
			ParseReviews:   stats.DatabaseStats.ParseReviews,
			LearnedAliases: stats.DatabaseStats.LearnedAliases,
		},
	})
}

// InvalidateCache xoá các bản ghi cache thuộc phiên bản gazetteer cũ.
// dry_run=true chỉ đếm, không xoá.
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	gazetteerVersion := c.Query("gazetteer_version")
	dryRun := c.Query("dry_run") == "true"

	result, err := ac.adminService.InvalidateCache(c.Request.Context(), gazetteerVersion, dryRun)
	if err != nil {
		ac.logger.Error("Lỗi invalidate cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "INVALIDATE_ERROR",
			Message: "Lỗi invalidate cache: " + err.Error(),
		})
		return
	}

	message := "Invalidate cache thành công"
	if result.DryRun {
		message = "Dry run: chưa xoá bản ghi nào"
	}

	c.JSON(http.StatusOK, responses.InvalidateCacheResponse{
		GazetteerVersion: result.GazetteerVersion,
		MatchedCount:     result.MatchedCount,
		DeletedCount:     result.DeletedCount,
		DryRun:           result.DryRun,
		Message:          message,
	})
}

// AddAlias thêm một alias địa danh mới
func (ac *AdminController) AddAlias(c *gin.Context) {
	var req requests.AliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	alias, err := ac.aliasService.Add(c.Request.Context(), req.Alias, req.ProvinceCode, models.SourceManual)
	if err != nil {
		ac.logger.Error("Lỗi thêm alias", zap.Error(err), zap.String("alias", req.Alias))
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "ALIAS_ERROR",
			Message: "Lỗi thêm alias: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, responses.SuccessResponse{
		Success:   true,
		Message:   "Thêm alias thành công",
		Data:      alias,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ListAliases lấy danh sách alias đã học, dùng nhiều nhất trước
func (ac *AdminController) ListAliases(c *gin.Context) {
	limit := 100
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 1000 {
		limit = l
	}

	aliases, total, err := ac.aliasService.List(c.Request.Context(), limit)
	if err != nil {
		ac.logger.Error("Lỗi lấy danh sách alias", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "ALIAS_LIST_ERROR",
			Message: "Lỗi lấy danh sách alias: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.AliasListResponse{
		Aliases: aliases,
		Total:   total,
	})
}

// ListReviews lấy danh sách review, mới nhất trước
func (ac *AdminController) ListReviews(c *gin.Context) {
	status := c.Query("status")
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}
	offset := 0
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
		offset = o
	}

	reviews, total, pending, err := ac.reviewService.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		ac.logger.Error("Lỗi lấy danh sách review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REVIEW_LIST_ERROR",
			Message: "Lỗi lấy danh sách review: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.ReviewListResponse{
		Reviews: reviews,
		Total:   total,
		Pending: pending,
		Limit:   limit,
		Offset:  offset,
	})
}

// ApproveReview duyệt một review theo fingerprint
func (ac *AdminController) ApproveReview(c *gin.Context) {
	fingerprint := c.Param("fingerprint")

	var req requests.ReviewApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	review, err := ac.reviewService.Approve(c.Request.Context(), fingerprint, req)
	if err != nil {
		ac.reviewError(c, err, "Lỗi approve review")
		return
	}

	c.JSON(http.StatusOK, responses.ReviewActionResponse{
		Success:     true,
		Fingerprint: fingerprint,
		Action:      "approve",
		Message:     "Review đã được duyệt",
		UpdatedAt:   review.ReviewedAt.Format(time.RFC3339),
	})
}

// RejectReview từ chối một review theo fingerprint
func (ac *AdminController) RejectReview(c *gin.Context) {
	fingerprint := c.Param("fingerprint")

	var req requests.ReviewRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	review, err := ac.reviewService.Reject(c.Request.Context(), fingerprint, req)
	if err != nil {
		ac.reviewError(c, err, "Lỗi reject review")
		return
	}

	c.JSON(http.StatusOK, responses.ReviewActionResponse{
		Success:     true,
		Fingerprint: fingerprint,
		Action:      "reject",
		Message:     "Review đã bị từ chối",
		UpdatedAt:   review.ReviewedAt.Format(time.RFC3339),
	})
}

// reviewError map lỗi review sang status code
func (ac *AdminController) reviewError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "REVIEW_NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrReviewCompleted):
		c.JSON(http.StatusConflict, responses.ErrorResponse{
			Error:   "REVIEW_ALREADY_COMPLETED",
			Message: err.Error(),
		})
	default:
		ac.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REVIEW_ERROR",
			Message: logMsg + ": " + err.Error(),
		})
	}
}

// ExportData export dữ liệu để backup
func (ac *AdminController) ExportData(c *gin.Context) {
	dataType := c.Param("type") // provinces, districts, aliases
	if dataType == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_TYPE",
			Message: "Thiếu loại dữ liệu cần export",
		})
		return
	}

	// Kiểm tra limit
	limit := 10000
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	data, err := ac.adminService.ExportData(c.Request.Context(), dataType, limit)
	if err != nil {
		ac.logger.Error("Lỗi export data", zap.Error(err), zap.String("type", dataType))
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "EXPORT_ERROR",
			Message: "Lỗi export data: " + err.Error(),
		})
		return
	}

	// Set headers for download
	filename := fmt.Sprintf("%s_export_%s.json", dataType, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// Reindex rebuild toàn bộ index địa danh trên Meilisearch rồi nạp lại
// synonyms từ learned_aliases
func (ac *AdminController) Reindex(c *gin.Context) {
	result, err := ac.adminService.ReindexPlaces(c.Request.Context())
	if err != nil {
		ac.logger.Error("Lỗi reindex", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REINDEX_ERROR",
			Message: "Lỗi reindex: " + err.Error(),
		})
		return
	}

	// Synonyms học được nạp lại sau khi index mới đã lên
	if err := ac.aliasService.RebuildSynonyms(c.Request.Context()); err != nil {
		ac.logger.Warn("Lỗi rebuild synonyms sau reindex", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.ReindexResponse{
		DocumentsIndexed: result.DocumentsIndexed,
		ProcessingTimeMs: result.ProcessingTimeMs,
		Message:          "Reindex thành công",
	})
}
