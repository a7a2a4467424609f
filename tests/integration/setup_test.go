package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finboard/internal/handlers"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/settings"
	"finboard/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Portfolio{},
		&models.Asset{},
		&models.MarketData{},
		&models.NewsItem{},
		&models.WatchlistItem{},
		&models.InvestorProfile{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	settingsStore, err := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("failed to create settings store: %v", err)
	}

	// Services
	assetService := services.NewAssetService(db, "My Portfolio")
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

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

	return &testApp{DB: db, Router: router}
}

// doRequest performs an HTTP request against the test app.
func (app *testApp) doRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON decodes a JSON object response body.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray decodes a JSON array response body.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// assertStatus fails the test when the response status differs.
func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
