package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/helpers/utils"
)

// Sentinel errors để tầng HTTP map sang status code
var (
	ErrReviewNotFound  = errors.New("review không tồn tại")
	ErrReviewCompleted = errors.New("review đã được xử lý")
)

// ReviewService quản lý hàng đợi review cho các parse có confidence
// thấp. Entry được key theo fingerprint, operator duyệt hoặc từ chối;
// kết quả sửa tay được ghi đè vào cache để các request sau dùng luôn.
type ReviewService struct {
	db         *mongo.Database
	collection *mongo.Collection
	cache      ICacheService // nil khi chạy không cache
	aliases    *AliasService // nil khi không học alias
	logger     *zap.Logger
}

// NewReviewService tạo mới ReviewService
func NewReviewService(db *mongo.Database, cache ICacheService, aliases *AliasService, logger *zap.Logger) *ReviewService {
	collection := db.Collection("parse_reviews")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "fingerprint", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "created_at", Value: 1}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.Warn("Không thể tạo indexes cho parse_reviews", zap.Error(err))
	}

	return &ReviewService{
		db:         db,
		collection: collection,
		cache:      cache,
		aliases:    aliases,
		logger:     logger,
	}
}

// Enqueue đưa một kết quả parse vào hàng đợi review. Fingerprint đã có
// entry thì giữ nguyên entry cũ (kể cả đã duyệt xong).
func (rs *ReviewService) Enqueue(ctx context.Context, result *models.ParsedMessage) error {
	review := models.NewParseReview(result)

	filter := bson.M{"fingerprint": review.Fingerprint}
	update := bson.M{"$setOnInsert": review}

	opts := options.Update().SetUpsert(true)
	res, err := rs.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("lỗi enqueue review: %w", err)
	}

	if res.UpsertedCount > 0 {
		rs.logger.Info("Đã đưa vào review queue",
			zap.String("fingerprint", review.Fingerprint),
			zap.Float64("confidence", review.Confidence),
			zap.String("preview", utils.TruncateText(review.RawMessage, 80)))
	}
	return nil
}

// List lấy danh sách review theo status, mới nhất trước
func (rs *ReviewService) List(ctx context.Context, status string, limit, offset int) ([]models.ParseReview, int64, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := rs.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("lỗi đếm reviews: %w", err)
	}

	pending, err := rs.PendingCount(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := rs.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("lỗi query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := make([]models.ParseReview, 0, limit)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, 0, fmt.Errorf("lỗi decode reviews: %w", err)
	}

	return reviews, total, pending, nil
}

// PendingCount đếm số review đang chờ
func (rs *ReviewService) PendingCount(ctx context.Context) (int64, error) {
	count, err := rs.collection.CountDocuments(ctx, bson.M{"status": models.ReviewStatusPending})
	if err != nil {
		return 0, fmt.Errorf("lỗi đếm pending reviews: %w", err)
	}
	return count, nil
}

// Approve duyệt một review. Có manual_result thì lưu kết quả sửa tay,
// ghi đè cache, và học alias khi operator yêu cầu.
func (rs *ReviewService) Approve(ctx context.Context, fingerprint string, req requests.ReviewApproveRequest) (*models.ParseReview, error) {
	review, err := rs.findByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if review.IsCompleted() {
		return nil, ErrReviewCompleted
	}

	if req.ManualResult != nil {
		rs.fillManualResult(req.ManualResult, review)
		review.SetManualResult(*req.ManualResult, req.ReviewerID)
	} else {
		review.Approve(req.ReviewerID)
	}

	if err := rs.replace(ctx, review); err != nil {
		return nil, err
	}

	// Kết quả cuối cùng (sửa tay nếu có) ghi đè cache theo fingerprint
	final := &review.AutoResult
	if review.ManualResult != nil {
		final = review.ManualResult
	}

	if rs.cache != nil {
		if err := rs.cache.Set(ctx, fingerprint, final); err != nil {
			rs.logger.Warn("Lỗi ghi đè cache sau approve", zap.Error(err), zap.String("fingerprint", fingerprint))
		} else {
			rs.markVerified(ctx, fingerprint)
		}
	}

	// Học alias: origin sửa tay khác origin tự động nghĩa là parser
	// không nhận ra token gốc
	if req.LearnAlias && rs.aliases != nil && review.ManualResult != nil {
		rs.learnFromCorrection(ctx, review)
	}

	rs.logger.Info("Review approved",
		zap.String("fingerprint", fingerprint),
		zap.String("reviewer", req.ReviewerID),
		zap.Bool("manual_result", review.ManualResult != nil))

	return review, nil
}

// Reject từ chối một review
func (rs *ReviewService) Reject(ctx context.Context, fingerprint string, req requests.ReviewRejectRequest) (*models.ParseReview, error) {
	review, err := rs.findByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if review.IsCompleted() {
		return nil, ErrReviewCompleted
	}

	review.Reject(req.ReviewerID)
	review.RejectReason = req.Reason

	if err := rs.replace(ctx, review); err != nil {
		return nil, err
	}

	rs.logger.Info("Review rejected",
		zap.String("fingerprint", fingerprint),
		zap.String("reviewer", req.ReviewerID),
		zap.String("reason", req.Reason))

	return review, nil
}

// findByFingerprint lấy review theo fingerprint
func (rs *ReviewService) findByFingerprint(ctx context.Context, fingerprint string) (*models.ParseReview, error) {
	var review models.ParseReview
	err := rs.collection.FindOne(ctx, bson.M{"fingerprint": fingerprint}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("lỗi query review: %w", err)
	}
	return &review, nil
}

// replace ghi lại review đã cập nhật
func (rs *ReviewService) replace(ctx context.Context, review *models.ParseReview) error {
	filter := bson.M{"fingerprint": review.Fingerprint}
	if _, err := rs.collection.ReplaceOne(ctx, filter, review); err != nil {
		return fmt.Errorf("lỗi cập nhật review: %w", err)
	}
	return nil
}

// fillManualResult bổ sung các trường định danh từ entry gốc để kết quả
// sửa tay vẫn tra cứu được theo fingerprint cũ.
func (rs *ReviewService) fillManualResult(manual *models.ParsedMessage, review *models.ParseReview) {
	if manual.Raw == "" {
		manual.Raw = review.RawMessage
	}
	if manual.NormalizedText == "" {
		manual.NormalizedText = review.NormalizedText
	}
	if manual.Fingerprint == "" {
		manual.Fingerprint = review.Fingerprint
	}
	if manual.GazetteerVersion == "" {
		manual.GazetteerVersion = review.AutoResult.GazetteerVersion
	}
	if manual.ParsedAt.IsZero() {
		manual.ParsedAt = time.Now()
	}
}

// markVerified đánh dấu bản ghi cache là đã duyệt tay
func (rs *ReviewService) markVerified(ctx context.Context, fingerprint string) {
	filter := bson.M{"fingerprint": fingerprint}
	update := bson.M{"$set": bson.M{"manually_verified": true}}

	if _, err := rs.db.Collection("parse_cache").UpdateOne(ctx, filter, update); err != nil {
		rs.logger.Warn("Lỗi đánh dấu manually_verified", zap.Error(err), zap.String("fingerprint", fingerprint))
	}
}

// learnFromCorrection học alias từ origin sửa tay: token gốc mà parser
// bỏ qua trỏ về tỉnh operator đã chọn.
func (rs *ReviewService) learnFromCorrection(ctx context.Context, review *models.ParseReview) {
	manual := review.ManualResult
	if manual == nil || manual.Origin == nil || manual.Origin.OriginalText == "" {
		return
	}

	auto := review.AutoResult.Origin
	if auto != nil && auto.ProvinceCode == manual.Origin.ProvinceCode {
		return
	}

	if _, err := rs.aliases.Add(ctx, manual.Origin.OriginalText, manual.Origin.ProvinceCode, models.SourceAutoLearned); err != nil {
		rs.logger.Warn("Không học được alias từ correction",
			zap.String("token", manual.Origin.OriginalText),
			zap.Int("province_code", manual.Origin.ProvinceCode),
			zap.Error(err))
		return
	}

	rs.logger.Info("Đã học alias từ review",
		zap.String("token", manual.Origin.OriginalText),
		zap.Int("province_code", manual.Origin.ProvinceCode))
}
