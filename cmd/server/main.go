package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/bizdesk/backend/internal/application/catalog"
	crmapp "github.com/bizdesk/backend/internal/application/crm"
	hrapp "github.com/bizdesk/backend/internal/application/hr"
	inventoryapp "github.com/bizdesk/backend/internal/application/inventory"
	partnerapp "github.com/bizdesk/backend/internal/application/partner"
	reportapp "github.com/bizdesk/backend/internal/application/report"
	tradeapp "github.com/bizdesk/backend/internal/application/trade"
	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/bizdesk/backend/internal/interfaces/http/handler"
	"github.com/bizdesk/backend/internal/interfaces/http/middleware"
	"github.com/bizdesk/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BizDesk Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	leadRepo := persistence.NewGormLeadRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)

	// Initialize transaction scopes
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)

	// Initialize application services
	documentService := tradeapp.NewDocumentService(tradeScope, documentRepo)
	adjustmentService := inventoryapp.NewAdjustmentService(inventoryScope, movementRepo)
	dashboardService := reportapp.NewDashboardService(documentRepo, productRepo, employeeRepo)
	productService := catalogapp.NewProductService(productRepo)
	partnerService := partnerapp.NewPartnerService(partnerRepo)
	employeeService := hrapp.NewEmployeeService(employeeRepo)
	leadService := crmapp.NewLeadService(leadRepo)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(documentService)
	inventoryHandler := handler.NewInventoryHandler(adjustmentService)
	masterDataHandler := handler.NewMasterDataHandler(productService, partnerService, employeeService, leadService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API prefix)
	engine.GET("/health", healthHandler(db))

	// API routes, mounted at /api
	r := router.NewRouter(engine)

	tradeRoutes := router.NewDomainGroup("trade", "/transactions")
	tradeRoutes.GET("", transactionHandler.List)
	tradeRoutes.POST("", transactionHandler.Create)
	tradeRoutes.GET("/:id/items", transactionHandler.ListItems)
	tradeRoutes.PUT("/:id", transactionHandler.Update)
	tradeRoutes.DELETE("/:id", transactionHandler.Delete)
	r.Register(tradeRoutes)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/movements", inventoryHandler.ListMovements)
	inventoryRoutes.POST("/adjustments", inventoryHandler.CreateAdjustment)
	r.Register(inventoryRoutes)

	masterDataRoutes := router.NewDomainGroup("masterdata", "")
	masterDataRoutes.GET("/products", masterDataHandler.ListProducts)
	masterDataRoutes.GET("/partners", masterDataHandler.ListPartners)
	masterDataRoutes.GET("/employees", masterDataHandler.ListEmployees)
	masterDataRoutes.GET("/leads", masterDataHandler.ListLeads)
	r.Register(masterDataRoutes)

	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/stats", dashboardHandler.Stats)
	r.Register(dashboardRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for the health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
