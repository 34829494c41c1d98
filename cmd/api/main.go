package main

import (
	"fmt"
	"net/http"
	"os"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/groq"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           Spendwise API
// @version         1.0
// @description     Spendwise is a personal finance tracker: record incomes and expenses by category, view aggregate totals, and request AI-generated savings tips.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// External completion service
	aiClient := groq.NewClient(
		appConfig.GroqBaseURL,
		appConfig.GroqAPIKey,
		appConfig.GroqModel,
		&http.Client{Timeout: appConfig.AITimeout},
	)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	historyService := services.NewHistoryService(db)
	ledgerService := services.NewLedgerService(db)
	advisorService := services.NewAdvisorService(expenseService, aiClient)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	historyHandler := handlers.NewHistoryHandler(userService, historyService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	suggestionHandler := handlers.NewSuggestionHandler(advisorService, appConfig.AITimeout)

	// Initialize Gin router
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
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Everything else requires a resolvable identity
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())

	category := protected.Group("/category")
	category.GET("", categoryHandler.List)
	category.POST("", categoryHandler.Create)

	expense := protected.Group("/expense")
	expense.GET("", expenseHandler.List)
	expense.POST("", expenseHandler.Create)
	expense.DELETE("", expenseHandler.DeleteAll)
	expense.DELETE("/:id", expenseHandler.Delete)

	income := protected.Group("/income")
	income.GET("", incomeHandler.List)
	income.POST("", incomeHandler.Create)

	protected.GET("/history", historyHandler.Get)
	protected.DELETE("/clear-all", ledgerHandler.ClearAll)
	protected.POST("/ai/suggestions", suggestionHandler.Suggest)

	log.Infof("Starting Spendwise server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
