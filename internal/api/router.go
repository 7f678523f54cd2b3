package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-share-api/internal/config"
	"github.com/news-share-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	newsHandler := NewNewsHandler(services, log)
	requireAuth := authMiddleware(cfg.Auth.JWTSecret)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services, log))

	// API v1
	v1 := router.Group("/v1")
	{
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.ListNews)
			news.GET("/top", newsHandler.TopNews)
			news.GET("/search", newsHandler.SearchNews)
			news.GET("/:id", newsHandler.GetNews)
			news.GET("/:id/comments", newsHandler.ListComments)

			news.POST("", requireAuth, newsHandler.CreateNews)
			news.GET("/mine", requireAuth, newsHandler.MyNews)
			news.PUT("/:id", requireAuth, newsHandler.UpdateNews)
			news.DELETE("/:id", requireAuth, newsHandler.DeleteNews)
			news.PUT("/:id/like", requireAuth, newsHandler.ToggleLike)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "news-share-api",
	})
}

// metricsHandler returns row counts per resource
func metricsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		counts := gin.H{}
		for _, resource := range []string{"users", "articles", "comments"} {
			count, err := services.Query.GetCount(ctx, resource)
			if err != nil {
				log.Error().Err(err).Str("resource", resource).Msg("Failed to collect metrics")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to collect metrics"})
				return
			}
			counts[resource] = count
		}

		c.JSON(http.StatusOK, gin.H{
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
