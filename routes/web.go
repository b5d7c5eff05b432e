package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes thiết lập web routes (nếu cần trong tương lai)
func SetupWebRoutes(router *gin.Engine) {
	// Web routes group
	web := router.Group("/")
	{
		// Home page
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Freight Message Parser Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		// API documentation
		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Freight Message Parser API v1",
				"endpoints": map[string]string{
					"parse":         "POST /v1/messages/parse",
					"batch":         "POST /v1/messages/jobs",
					"job_status":    "GET /v1/messages/jobs/:jobID/status",
					"job_results":   "GET /v1/messages/jobs/:jobID/results",
					"place_search":  "GET /v1/places/search?q=",
					"admin_stats":   "GET /v1/admin/stats",
					"admin_reviews": "GET /v1/admin/reviews",
					"health":        "GET /v1/health",
					"metrics":       "GET /metrics",
				},
			})
		})

		// Status page
		web.GET("/status", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "running",
				"service": "Freight Message Parser",
				"health":  "/health",
			})
		})
	}
}
