package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/app/controllers"
	"github.com/freight-parser/app/services"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
	"github.com/freight-parser/internal/search"
	"github.com/freight-parser/routes"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	if err := config.Load("config/parser.yaml"); err != nil {
		panic(err)
	}

	// Initialize logger
	logger := initLogger()
	defer logger.Sync()

	// Optional scoring weights overlay for confidence tuning
	if path := os.Getenv("SCORING_FILE"); path != "" {
		if err := config.LoadScoring(path); err != nil {
			logger.Warn("Failed to load scoring file, keeping configured weights",
				zap.String("path", path), zap.Error(err))
		}
	}

	logger.Info("Starting Freight Message Parser Service...",
		zap.String("env", config.C.Server.Env),
		zap.String("gazetteer_version", gazetteer.DataVersion))

	// Initialize MongoDB connection
	mongoClient, err := initMongoDB(logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	database := mongoClient.Database(config.C.Mongo.Database)

	// Initialize Meilisearch place searcher. The parse path never needs
	// it, so a missing Meilisearch only disables place search endpoints.
	searcher := initSearcher(logger)

	// Initialize gazetteer and merge learned aliases on top
	gaz := gazetteer.New()
	aliasService := services.NewAliasService(database, gaz, searcher, logger)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if n, err := aliasService.LoadIntoGazetteer(loadCtx); err != nil {
		logger.Warn("Failed to load learned aliases", zap.Error(err))
	} else {
		logger.Info("Learned aliases merged into gazetteer", zap.Int("count", n))
	}
	cancelLoad()

	// Initialize parser with configured scoring weights
	freightParser := parser.NewWithWeights(gaz, scoringWeights(), logger)

	// Initialize cache layers
	cacheService := initCache(database, logger)
	defer cacheService.Close()

	// Initialize services
	reviewService := services.NewReviewService(database, cacheService, aliasService, logger)
	parseService := services.NewParseService(freightParser, cacheService, reviewService, logger)
	adminService := services.NewAdminService(database, cacheService, searcher, gaz, logger)

	// Initialize controllers
	parseController := controllers.NewParseController(parseService, cacheService, searcher, logger)
	adminController := controllers.NewAdminController(adminService, aliasService, reviewService, logger)

	// Setup Gin router
	if config.C.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, parseController, adminController)

	// Start server
	srv := &http.Server{
		Addr:    ":" + config.C.Server.Port,
		Handler: router,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", config.C.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initLogger() *zap.Logger {
	if config.C.Server.Env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

func initMongoDB(logger *zap.Logger) (*mongo.Client, error) {
	mongoURL := config.C.Mongo.URL

	logger.Info("Connecting to MongoDB", zap.String("url", mongoURL))

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB")
	return client, nil
}

func initSearcher(logger *zap.Logger) *search.PlaceSearcher {
	searchConfig := search.SearchConfig{
		Host:          config.C.Meili.URL,
		APIKey:        config.C.Meili.MasterKey,
		IndexName:     config.C.Meili.IndexName,
		Timeout:       time.Duration(config.C.Meili.TimeoutSeconds) * time.Second,
		MaxCandidates: 20,
	}

	searcher, err := search.NewPlaceSearcher(searchConfig, logger)
	if err != nil {
		logger.Warn("Meilisearch unavailable, place search disabled", zap.Error(err))
		return nil
	}
	logger.Info("Meilisearch connected", zap.String("index", searchConfig.IndexName))
	return searcher
}

// initCache builds the deepest cache stack the environment supports:
// Redis+Mongo hybrid, a single layer when one side is down, in-memory
// LRU when both are.
func initCache(database *mongo.Database, logger *zap.Logger) services.ICacheService {
	redisCache, redisErr := services.NewRedisCacheService(config.C.Redis.URL, logger)
	if redisErr != nil {
		logger.Warn("Redis unavailable", zap.Error(redisErr))
	} else if config.C.Cache.RedisTTLHours > 0 {
		redisCache.SetTTL(time.Duration(config.C.Cache.RedisTTLHours) * time.Hour)
	}

	mongoCache, mongoErr := services.NewMongoCacheService(database, config.C.Cache.L1Size, logger)
	if mongoErr != nil {
		logger.Warn("Mongo cache unavailable", zap.Error(mongoErr))
	}

	switch {
	case redisErr == nil && mongoErr == nil:
		hybrid := services.NewHybridCacheService(redisCache, mongoCache, logger)
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := hybrid.WarmUpFromMongoDB(warmCtx, config.C.Cache.WarmupLimit); err != nil {
			logger.Warn("Cache warmup failed", zap.Error(err))
		}
		return hybrid
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
