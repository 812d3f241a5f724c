package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shaan2522/bajajfinserv-api/internal/adapter/http/handler"
	"github.com/Shaan2522/bajajfinserv-api/internal/adapter/http/middleware"
	"github.com/Shaan2522/bajajfinserv-api/internal/adapter/repository/postgres"
	"github.com/Shaan2522/bajajfinserv-api/internal/domain/service"
	"github.com/Shaan2522/bajajfinserv-api/internal/infrastructure/config"
	"github.com/Shaan2522/bajajfinserv-api/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize repositories
	submissionRepo := postgres.NewSubmissionRepository(db)

	// Initialize usecases
	classifier := service.NewTokenClassifier()
	cacheTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second
	classifyUC := usecase.NewClassifyUsecase(submissionRepo, classifier, redisClient, cacheTTL)

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC, cfg.Operator)
	submissionHandler := handler.NewSubmissionHandler(classifyUC)

	// Legacy flat routes
	router.GET("/", classifyHandler.Home)
	router.POST("/bfhl", classifyHandler.Classify)
	router.GET("/bfhl", classifyHandler.OperationCode)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		submissions := v1.Group("/submissions")
		{
			submissions.GET("", submissionHandler.ListSubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
			submissions.DELETE("/:id", submissionHandler.DeleteSubmission)
		}
	}

	return router
}
