package main

import (
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/auditly/backend/analyzer"
	"github.com/auditly/backend/fetcher"
	"github.com/auditly/backend/middleware"
	"github.com/auditly/backend/probe"
	"github.com/auditly/backend/registry"
	"github.com/auditly/backend/stats"
)

func loadEnv() {
	// Try .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	storage, err := stats.NewStorage(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize stats storage:", err)
	}

	engine := analyzer.NewEngine(fetcher.New(), registry.NewClient(), probe.New(), storage)
	rateLimiter := middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.POST("/analyze", analyzeURL(engine))

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, storage.Summary())
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func analyzeURL(engine *analyzer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Analyze request received from: %s\n", c.ClientIP())
		var request struct {
			URL string `json:"url" binding:"required,url"`
		}

		if err := c.ShouldBindJSON(&request); err != nil || !validURL(request.URL) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid URL provided",
			})
			return
		}

		analysis, err := engine.Analyze(c.Request.Context(), request.URL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to analyze URL: " + err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, analysis)
	}
}

// validURL requires an absolute http or https URL with a host.
func validURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
