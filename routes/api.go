package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freight-parser/app/controllers"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, parseController *controllers.ParseController, adminController *controllers.AdminController) {
	// API v1 group
	v1 := router.Group("/v1")
	{
		// Message parsing routes
		messages := v1.Group("/messages")
		{
			messages.POST("/parse", parseController.ParseMessage)
			messages.POST("/jobs", parseController.BatchParse)
			messages.GET("/jobs/:jobID/status", parseController.GetJobStatus)
			messages.GET("/jobs/:jobID/results", parseController.GetJobResults)
		}

		// Place search route (Meilisearch)
		places := v1.Group("/places")
		{
			places.GET("/search", parseController.SuggestPlaces)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.POST("/aliases", adminController.AddAlias)
			admin.GET("/aliases", adminController.ListAliases)
			admin.GET("/reviews", adminController.ListReviews)
			admin.POST("/reviews/:fingerprint/approve", adminController.ApproveReview)
			admin.POST("/reviews/:fingerprint/reject", adminController.RejectReview)
			admin.GET("/export/:type", adminController.ExportData)
			admin.POST("/reindex", adminController.Reindex)
		}

		// Health check route
		v1.GET("/health", parseController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, parseController *controllers.ParseController) {
	// Root health check
	router.GET("/health", parseController.HealthCheck)

	// Readiness check
	router.GET("/ready", parseController.Readiness)

	// Liveness check
	router.GET("/live", parseController.Liveness)
}

// SetupMetricsRoutes thiết lập metrics routes (cho Prometheus)
func SetupMetricsRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupAllRoutes thiết lập tất cả routes
func SetupAllRoutes(router *gin.Engine, parseController *controllers.ParseController, adminController *controllers.AdminController) {
	// Thiết lập middleware
	setupMiddleware(router)

	// Thiết lập các loại routes
	SetupWebRoutes(router)
	SetupHealthRoutes(router, parseController)
	SetupAPIRoutes(router, parseController, adminController)
	SetupMetricsRoutes(router)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware thiết lập middleware cho router
func setupMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(gin.Recovery())

	// Logger middleware
	router.Use(gin.Logger())
}
