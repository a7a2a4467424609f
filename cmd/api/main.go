package main

import (
	"fmt"
	"net/http"
	"os"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/handlers"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/services"
	"finboard/internal/settings"
	"finboard/internal/validator"

	"github.com/gin-gonic/gin"
)

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

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	settingsStore, err := settings.NewStore(appConfig.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	validator.Register()

	// Services
	db := dbManager.DB()
	assetService := services.NewAssetService(db, appConfig.PortfolioName)
	insightService := services.NewInsightService(db)
	portfolioService := services.NewPortfolioService(db, settingsStore)
	marketService := services.NewMarketService(db)
	newsService := services.NewNewsService(db)
	watchlistService := services.NewWatchlistService(db)

	// Handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	insightHandler := handlers.NewInsightHandler(insightService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	simulatorHandler := handlers.NewSimulatorHandler()
	marketHandler := handlers.NewMarketHandler(marketService)
	newsHandler := handlers.NewNewsHandler(newsService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.GET("/insights", insightHandler.GetInsights)
	api.POST("/insights", insightHandler.CreateProfile)

	api.GET("/portfolio", portfolioHandler.GetOverview)

	api.GET("/assets", assetHandler.ListAssets)
	api.POST("/assets", assetHandler.CreateAsset)
	api.DELETE("/assets/:id", assetHandler.DeleteAsset)

	api.POST("/simulator", simulatorHandler.Simulate)

	api.GET("/market", marketHandler.GetMarket)
	api.GET("/news", newsHandler.ListNews)

	api.GET("/watchlist", watchlistHandler.ListItems)
	api.POST("/watchlist", watchlistHandler.ToggleItem)

	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSettings)

	log.Infof("Starting finboard server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
