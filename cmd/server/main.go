package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"immosearch/internal/config"
	"immosearch/internal/extractor"
	"immosearch/internal/handler"
	"immosearch/internal/model"
	"immosearch/internal/repository"
	"immosearch/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Immo Dakar Search")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Load the gazetteer and build the query extractor
	gazetteer := extractor.NewGazetteer()
	ext, err := extractor.New(gazetteer, extractor.Options{
		BareNumberThreshold: cfg.Extractor.BareNumberThreshold,
		DefaultTransaction:  model.TransactionType(cfg.Extractor.DefaultTransaction),
	})
	if err != nil {
		log.Fatalf("Failed to build extractor: %v", err)
	}

	// Initialize services
	ranker := service.NewRanker(
		cfg.Ranking.WeightText,
		cfg.Ranking.WeightPrice,
		cfg.Ranking.WeightRecency,
	)
	searchService := service.NewSearchService(repo, ext, gazetteer, ranker)

	log.Println("✅ Services initialized")
	log.Printf("   - Bare number threshold: %.0f FCFA", cfg.Extractor.BareNumberThreshold)
	log.Printf("   - Default transaction: %s", cfg.Extractor.DefaultTransaction)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	statsHandler := handler.NewStatsHandler(searchService)
	feedbackHandler := handler.NewFeedbackHandler(searchService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "immo-dakar-search",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Search endpoints
		apiV1.POST("/search", searchHandler.Search)
		apiV1.POST("/extract", searchHandler.Extract)
		apiV1.GET("/properties/:id", searchHandler.GetProperty)

		// Statistics endpoints
		apiV1.GET("/stats", statsHandler.Global)
		apiV1.GET("/stats/cities", statsHandler.Cities)

		// Feedback endpoint
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
