package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pocketledger/internal/config"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/parser"
	"pocketledger/internal/services"
	"pocketledger/internal/storage"
	"pocketledger/internal/validator"

	_ "pocketledger/internal/docs" // Import swagger docs
)

// @title           pocketledger API
// @version         1.0
// @description     pocketledger is a personal expense tracker: transactions are logged from free text, voice transcripts, or receipt photos, categorized into a growing two-level hierarchy, and summarized per month.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	// Storage: the blob store behind the registry and the transaction set.
	store, err := storage.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	if err := store.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Core services.
	registry := services.NewRegistryService(store, nil)
	transactions := services.NewTransactionService(store)
	period := services.NewPeriodService()
	reconciler := services.NewReconcileService(registry, transactions)
	analytics := services.NewAnalyticsService(transactions, registry, period)

	txParser, err := parser.NewGeminiParser(context.Background(), appConfig)
	if err != nil {
		return fmt.Errorf("failed to create assistant client: %w", err)
	}

	// Handlers.
	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(reconciler, transactions, analytics)
	categoryHandler := handlers.NewCategoryHandler(registry)
	periodHandler := handlers.NewPeriodHandler(period)
	analyticsHandler := handlers.NewAnalyticsHandler(analytics)
	parseHandler := handlers.NewParseHandler(txParser, registry, transactions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	transactionRoutes := protected.Group("/transactions")
	transactionRoutes.GET("", transactionHandler.GetTransactions)
	transactionRoutes.POST("", transactionHandler.CreateTransaction)
	transactionRoutes.PUT("/:id", transactionHandler.UpdateTransaction)
	transactionRoutes.DELETE("/:id", transactionHandler.DeleteTransaction)

	categoryRoutes := protected.Group("/categories")
	categoryRoutes.GET("", categoryHandler.GetCategories)
	categoryRoutes.POST("/:name/subcategories", categoryHandler.AddSubcategory)
	categoryRoutes.DELETE("/:name/subcategories/:sub", categoryHandler.DeleteSubcategory)

	periodRoutes := protected.Group("/period")
	periodRoutes.GET("", periodHandler.GetPeriod)
	periodRoutes.POST("/change", periodHandler.ChangeMonth)

	analyticsRoutes := protected.Group("/analytics")
	analyticsRoutes.GET("/summary", analyticsHandler.GetSummary)
	analyticsRoutes.GET("/breakdown", analyticsHandler.GetBreakdown)
	analyticsRoutes.GET("/trend", analyticsHandler.GetTrend)

	parseRoutes := protected.Group("/parse")
	parseRoutes.POST("/text", parseHandler.ParseText)
	parseRoutes.POST("/image", parseHandler.ParseImage)

	log.Infof("Starting pocketledger server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
