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
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
	"github.com/freight-parser/internal/search"
)

// AliasService quản lý alias tỉnh học được lúc runtime. Alias được lưu
// trong MongoDB dạng đã chuẩn hoá và merge vào gazetteer in-memory.
type AliasService struct {
	collection *mongo.Collection
	gaz        *gazetteer.Gazetteer
	searcher   *search.PlaceSearcher // nil khi không có Meilisearch
	logger     *zap.Logger
}

// NewAliasService tạo mới AliasService
func NewAliasService(db *mongo.Database, gaz *gazetteer.Gazetteer, searcher *search.PlaceSearcher, logger *zap.Logger) *AliasService {
	collection := db.Collection("learned_aliases")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "alias", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "province_code", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "usage_count", Value: -1}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.Warn("Không thể tạo indexes cho learned_aliases", zap.Error(err))
	}

	return &AliasService{
		collection: collection,
		gaz:        gaz,
		searcher:   searcher,
		logger:     logger,
	}
}

// Add thêm alias mới (hoặc bump usage nếu đã có) và merge ngay vào
// gazetteer đang chạy.
func (als *AliasService) Add(ctx context.Context, alias string, provinceCode int, source string) (*models.LearnedAlias, error) {
	normalized := normalizer.NormalizeLocationName(alias)
	if normalized == "" {
		return nil, errors.New("alias rỗng sau khi chuẩn hoá")
	}

	province, ok := als.gaz.ProvinceByCode(provinceCode)
	if !ok {
		return nil, fmt.Errorf("mã tỉnh không hợp lệ: %d", provinceCode)
	}

	now := time.Now()
	filter := bson.M{"alias": normalized}
	update := bson.M{
		"$set": bson.M{"last_used": now},
		"$inc": bson.M{"usage_count": 1},
		"$setOnInsert": bson.M{
			"alias":         normalized,
			"province_name": province.Name,
			"province_code": province.Code,
			"confidence":    0.8,
			"source":        source,
			"created_at":    now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := als.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("lỗi lưu alias: %w", err)
	}

	if err := als.gaz.MergeAlias(normalized, province.Code); err != nil {
		als.logger.Warn("Không merge được alias vào gazetteer",
			zap.String("alias", normalized),
			zap.Int("province_code", province.Code),
			zap.Error(err))
	}

	als.logger.Info("Đã thêm alias",
		zap.String("alias", normalized),
		zap.String("province", province.Name),
		zap.String("source", source))

	var record models.LearnedAlias
	if err := als.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		return nil, fmt.Errorf("lỗi đọc lại alias: %w", err)
	}
	return &record, nil
}

// List lấy danh sách alias theo usage_count giảm dần
func (als *AliasService) List(ctx context.Context, limit int) ([]models.LearnedAlias, int64, error) {
	total, err := als.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("lỗi đếm aliases: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{bson.E{Key: "usage_count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := als.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("lỗi query aliases: %w", err)
	}
	defer cursor.Close(ctx)

	aliases := make([]models.LearnedAlias, 0, limit)
	if err := cursor.All(ctx, &aliases); err != nil {
		return nil, 0, fmt.Errorf("lỗi decode aliases: %w", err)
	}

	return aliases, total, nil
}

// LoadIntoGazetteer merge toàn bộ alias đã lưu vào gazetteer in-memory.
// Gọi một lần lúc khởi động.
func (als *AliasService) LoadIntoGazetteer(ctx context.Context) (int, error) {
	cursor, err := als.collection.Find(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("lỗi lấy learned_aliases: %w", err)
	}
	defer cursor.Close(ctx)

	loaded := 0
	for cursor.Next(ctx) {
		var alias models.LearnedAlias
		if err := cursor.Decode(&alias); err != nil {
			als.logger.Warn("Lỗi decode learned alias", zap.Error(err))
			continue
		}

		if err := als.gaz.MergeAlias(alias.Alias, alias.ProvinceCode); err != nil {
			als.logger.Warn("Không merge được alias",
				zap.String("alias", alias.Alias),
				zap.Error(err))
			continue
		}
		loaded++
	}

	als.logger.Info("Đã load learned aliases vào gazetteer", zap.Int("loaded", loaded))
	return loaded, nil
}

// RebuildSynonyms đẩy alias đã học vào synonyms của Meilisearch để
// place search cũng nhận các tên gọi mới.
func (als *AliasService) RebuildSynonyms(ctx context.Context) error {
	if als.searcher == nil {
		return errors.New("meilisearch không được cấu hình")
	}

	cursor, err := als.collection.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("lỗi lấy learned_aliases: %w", err)
	}
	defer cursor.Close(ctx)

	synonyms := make(map[string][]string)
	for cursor.Next(ctx) {
		var alias models.LearnedAlias
		if err := cursor.Decode(&alias); err != nil {
			als.logger.Warn("Lỗi decode learned alias", zap.Error(err))
			continue
		}

		canonical := normalizer.NormalizeLocationName(alias.ProvinceName)
		synonyms[alias.Alias] = append(synonyms[alias.Alias], canonical)
	}

	if len(synonyms) == 0 {
		als.logger.Info("Không có alias nào để đẩy vào synonyms")
		return nil
	}

	if err := als.searcher.UpdateSynonyms(synonyms); err != nil {
		return fmt.Errorf("lỗi update Meilisearch synonyms: %w", err)
	}

	als.logger.Info("Synonyms rebuilt", zap.Int("synonym_groups", len(synonyms)))
	return nil
}
