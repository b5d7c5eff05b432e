package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/app/services"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
)

// The worker drains raw freight messages from a Redis list and runs
// them through the same parse pipeline as the API: cache-first parse,
// review enqueue on low confidence, write-through on miss.
func main() {
	_ = godotenv.Load()
	if err := config.Load("config/parser.yaml"); err != nil {
		panic(err)
	}

	logger := initLogger()
	defer logger.Sync()

	// Optional scoring weights overlay, same knob as the API
	if path := os.Getenv("SCORING_FILE"); path != "" {
		if err := config.LoadScoring(path); err != nil {
			logger.Warn("Failed to load scoring file, keeping configured weights",
				zap.String("path", path), zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting Freight Message Parser Worker...",
		zap.String("queue_key", config.C.Redis.QueueKey))

	// Redis queue connection
	opt, err := redis.ParseURL(config.C.Redis.URL)
	if err != nil {
		logger.Fatal("Invalid Redis URL", zap.Error(err))
	}
	queue := redis.NewClient(opt)
	defer queue.Close()
	if err := queue.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// MongoDB for cache, reviews and learned aliases
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(config.C.Mongo.URL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = mongoClient.Ping(pingCtx, nil)
	cancelPing()
	if err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	database := mongoClient.Database(config.C.Mongo.Database)

	// Same pipeline wiring as the API, minus Meilisearch
	gaz := gazetteer.New()
	aliasService := services.NewAliasService(database, gaz, nil, logger)
	if n, err := aliasService.LoadIntoGazetteer(ctx); err != nil {
		logger.Warn("Failed to load learned aliases", zap.Error(err))
	} else {
		logger.Info("Learned aliases merged into gazetteer", zap.Int("count", n))
	}

	cacheService := initCache(database, logger)
	defer cacheService.Close()

	freightParser := parser.NewWithWeights(gaz, scoringWeights(), logger)
	reviewService := services.NewReviewService(database, cacheService, aliasService, logger)
	parseService := services.NewParseService(freightParser, cacheService, reviewService, logger)

	processed := drainQueue(ctx, queue, parseService, logger)

	logger.Info("Worker exited", zap.Int64("messages_processed", processed))
}

// drainQueue blocks on the queue until the context is canceled.
func drainQueue(ctx context.Context, queue *redis.Client, parseService *services.ParseService, logger *zap.Logger) int64 {
	var processed int64

	for {
		res, err := queue.BRPop(ctx, 5*time.Second, config.C.Redis.QueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // queue empty, block again
			}
			if ctx.Err() != nil {
				logger.Info("Shutting down worker...")
				return processed
			}
			logger.Error("Queue read failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value]
		if len(res) < 2 {
			continue
		}
		rawMessage := res[1]

		result, cacheHit, err := parseService.ParseMessage(ctx, rawMessage, requests.ParseOptions{})
		if err != nil {
			logger.Error("Parse failed", zap.Error(err))
			continue
		}
		processed++

		logger.Debug("Message processed",
			zap.String("fingerprint", result.Fingerprint),
			zap.String("message_type", result.MessageType),
			zap.Float64("confidence", result.Confidence.Score),
			zap.Bool("cache_hit", cacheHit))

		if processed%1000 == 0 {
			logger.Info("Queue progress", zap.Int64("messages_processed", processed))
		}
	}
}

func initLogger() *zap.Logger {
	if config.C.Server.Env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

// initCache mirrors the API cache ladder: hybrid when Redis and Mongo
// are both up, single layer otherwise, in-memory LRU as the floor.
func initCache(database *mongo.Database, logger *zap.Logger) services.ICacheService {
	redisCache, redisErr := services.NewRedisCacheService(config.C.Redis.URL, logger)
	if redisErr != nil {
		logger.Warn("Redis cache unavailable", zap.Error(redisErr))
	} else if config.C.Cache.RedisTTLHours > 0 {
		redisCache.SetTTL(time.Duration(config.C.Cache.RedisTTLHours) * time.Hour)
	}

	mongoCache, mongoErr := services.NewMongoCacheService(database, config.C.Cache.L1Size, logger)
	if mongoErr != nil {
		logger.Warn("Mongo cache unavailable", zap.Error(mongoErr))
	}

	switch {
	case redisErr == nil && mongoErr == nil:
		return services.NewHybridCacheService(redisCache, mongoCache, logger)
	case mongoErr == nil:
		return mongoCache
	case redisErr == nil:
		return redisCache
	}

	memCache, err := services.NewMemoryCacheService(config.C.Cache.L1Size, 24*time.Hour)
	if err != nil {
		logger.Fatal("Failed to create in-memory cache", zap.Error(err))
	}
	logger.Warn("All cache backends unavailable, using in-memory LRU only")
	return memCache
}

func scoringWeights() parser.Weights {
	return parser.Weights{
		Origin:       config.C.Scoring.Origin,
		Destination:  config.C.Scoring.Destination,
		Vehicle:      config.C.Scoring.Vehicle,
		Phone:        config.C.Scoring.Phone,
		Weight:       config.C.Scoring.Weight,
		Contact:      config.C.Scoring.Contact,
		CargoType:    config.C.Scoring.CargoType,
		BodyType:     config.C.Scoring.BodyType,
		RouteBonus:   config.C.Scoring.RouteBonus,
		ContactBonus: config.C.Scoring.ContactBonus,
	}
}
