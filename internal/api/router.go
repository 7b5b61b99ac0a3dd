package api

import (
	"net/http"
	"time"

	"github.com/blog-crud-api/internal/config"
	"github.com/blog-crud-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware. Recovery and the error translator sit inside the logging
	// middleware so every request, panicking ones included, gets an access
	// log line with the translated status.
	router.Use(loggingMiddleware(log))
	router.Use(recoveryMiddleware(cfg, log))
	router.Use(errorMiddleware(cfg, log))
	router.Use(corsMiddleware())

	// Handlers
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API
	apiGroup := router.Group("/api")
	{
		posts := apiGroup.Group("/post")
		{
			posts.GET("", postHandler.List)
			posts.GET("/:id", postHandler.Get)
			posts.POST("", postHandler.Create)
			posts.PUT("/:id", postHandler.Update)
			posts.DELETE("/:id", postHandler.Delete)
		}

		comments := apiGroup.Group("/comment")
		{
			comments.GET("", commentHandler.List)
			comments.GET("/:id", commentHandler.Get)
			comments.POST("", commentHandler.Create)
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-crud-api",
	})
}

// metricsHandler returns post/comment row counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		postsCount, _ := services.Post.Count(ctx)
		commentsCount, _ := services.Comment.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"posts":    postsCount,
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Author")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
