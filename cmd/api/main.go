package main

import (
	"fmt"
	"hearth/internal/config"
	"hearth/internal/database"
	"hearth/internal/handlers"
	"hearth/internal/logger"
	"hearth/internal/middleware"
	"hearth/internal/services"
	"hearth/internal/storage"
	"hearth/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hearth/internal/docs" // Import swagger docs
)

// @title           Hearth API
// @version         1.0
// @description     Hearth is a household budget tracker: members, per-member monthly income, budgeted categories, split transactions, and shared debts, with derived monthly summaries.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
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

	// Register custom request validators
	validator.Register()

	// Open the local database
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load the persisted ledger snapshot
	store := storage.NewStore(dbManager.DB())
	ledger, err := services.NewLedgerService(store)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	// Initialize handlers
	authHandler, err := handlers.NewAuthHandler(appConfig.Password)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}
	memberHandler := handlers.NewMemberHandler(ledger)
	categoryHandler := handlers.NewCategoryHandler(ledger)
	transactionHandler := handlers.NewTransactionHandler(ledger)
	debtHandler := handlers.NewDebtHandler(ledger)
	summaryHandler := handlers.NewSummaryHandler(ledger)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Member routes
	members := protected.Group("/members")
	members.POST("", memberHandler.CreateMember)
	members.GET("", memberHandler.GetMembers)
	members.DELETE("/:id", memberHandler.DeleteMember)
	members.PUT("/:id/income", memberHandler.UpsertIncome)
	members.GET("/:id/summary", memberHandler.GetMemberSummary)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/payment", debtHandler.TogglePayment)

	// Month summary
	protected.GET("/summary", summaryHandler.GetSummary)

	log.Infof("Starting Hearth backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
