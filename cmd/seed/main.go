// Command seed populates the database with a demo portfolio, market quotes,
// news and watchlist entries so the dashboard has data to show out of the box.
package main

import (
	"fmt"
	"os"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/fixtures"
	"finboard/internal/logger"
	"finboard/internal/models"

	"gorm.io/gorm"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db := dbManager.DB()
	log := logger.Get()

	portfolio, err := seedPortfolio(db, cfg.PortfolioName)
	if err != nil {
		return err
	}
	log.Infof("Portfolio %q ready", portfolio.Name)

	counts := map[string]int{}
	if counts["assets"], err = seedAssets(db, portfolio.ID); err != nil {
		return err
	}
	if counts["market"], err = seedMarket(db); err != nil {
		return err
	}
	if counts["news"], err = seedNews(db); err != nil {
		return err
	}
	if counts["watchlist"], err = seedWatchlist(db); err != nil {
		return err
	}

	log.Infow("seed complete",
		"assets", counts["assets"],
		"market", counts["market"],
		"news", counts["news"],
		"watchlist", counts["watchlist"],
	)
	return nil
}

func seedPortfolio(db *gorm.DB, name string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.Order("created_at ASC").First(&portfolio).Error
	if err == nil {
		return &portfolio, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	portfolio = models.Portfolio{Name: name, Currency: "EUR"}
	if err := db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func seedAssets(db *gorm.DB, portfolioID string) (int, error) {
	var count int64
	if err := db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	demo := []models.Asset{
		{PortfolioID: portfolioID, Name: "Apple Inc", Ticker: "AAPL", Type: models.AssetTypeStock, Quantity: 15, BuyPrice: 155.30, CurrentPrice: 228.50, Currency: "USD", Category: "Tech", BuyDate: now.AddDate(-2, 0, 0)},
		{PortfolioID: portfolioID, Name: "LVMH", Ticker: "MC.PA", Type: models.AssetTypeStock, Quantity: 8, BuyPrice: 710.00, CurrentPrice: 642.80, Currency: "EUR", Category: "Luxury", BuyDate: now.AddDate(-1, -6, 0)},
		{PortfolioID: portfolioID, Name: "iShares MSCI World", Ticker: "IWDA.AS", Type: models.AssetTypeETF, Quantity: 120, BuyPrice: 72.40, CurrentPrice: 95.10, Currency: "EUR", Category: "World", BuyDate: now.AddDate(-3, 0, 0)},
		{PortfolioID: portfolioID, Name: "Amundi S&P 500", Ticker: "500.PA", Type: models.AssetTypeETF, Quantity: 60, BuyPrice: 38.90, CurrentPrice: 52.30, Currency: "EUR", Category: "US", BuyDate: now.AddDate(-2, -3, 0)},
		{PortfolioID: portfolioID, Name: "Bitcoin", Ticker: "BTC-USD", Type: models.AssetTypeCrypto, Quantity: 0.35, BuyPrice: 42000, CurrentPrice: 95000, Currency: "USD", Category: "Crypto", BuyDate: now.AddDate(-1, -8, 0)},
		{PortfolioID: portfolioID, Name: "Ethereum", Ticker: "ETH-USD", Type: models.AssetTypeCrypto, Quantity: 2.5, BuyPrice: 2800, CurrentPrice: 3400, Currency: "USD", Category: "Crypto", BuyDate: now.AddDate(-1, -2, 0)},
		{PortfolioID: portfolioID, Name: "Paris Apartment Share", Ticker: "SCPI-01", Type: models.AssetTypeRealEstate, Quantity: 25, BuyPrice: 1020, CurrentPrice: 1085, Currency: "EUR", Category: "SCPI", BuyDate: now.AddDate(-4, 0, 0)},
		{PortfolioID: portfolioID, Name: "Livret A", Ticker: "LIVRET-A", Type: models.AssetTypeSavings, Quantity: 1, BuyPrice: 18500, CurrentPrice: 19050, Currency: "EUR", Category: "Savings", BuyDate: now.AddDate(-5, 0, 0)},
	}

	if err := db.Create(&demo).Error; err != nil {
		return 0, err
	}
	return len(demo), nil
}

func seedMarket(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.MarketData{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	rows := fixtures.Market(time.Now())
	for i := range rows {
		rows[i].ID = "" // let the hook assign fresh IDs
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func seedNews(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.NewsItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := fixtures.News()
	for i := range items {
		items[i].ID = ""
	}
	if err := db.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}

func seedWatchlist(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.WatchlistItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := fixtures.Watchlist(time.Now())
	for i := range items {
		items[i].ID = ""
	}
	if err := db.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}
