package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/api/handlers"
	apimiddleware "github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/api/middleware"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/composer"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/metrics"
)

func SetupRouter(db *gorm.DB, cloudwatch *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// One composer shared by all handlers; per-request seeds override
	// its random source without reseeding it
	comp := composer.New()

	v1 := router.Group("/api/v1")
	{
		compositionHandler := handlers.NewCompositionHandler(comp, db, cloudwatch)
		v1.POST("/compositions", compositionHandler.Create)
		v1.GET("/compositions", compositionHandler.List)

		v1.GET("/styles", handlers.ListStyles)

		suggestionHandler := handlers.NewSuggestionHandler(comp)
		v1.POST("/suggestions", suggestionHandler.Suggest)

		analysisHandler := handlers.NewAnalysisHandler(comp)
		v1.POST("/analysis", analysisHandler.Analyze)
	}

	return router
}
