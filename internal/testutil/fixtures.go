package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finboard/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestPortfolio creates a portfolio with a unique name.
func CreateTestPortfolio(t *testing.T, db *gorm.DB) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		Name:     fmt.Sprintf("Test Portfolio %d", nextID()),
		Currency: "EUR",
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestAsset creates an asset of the given type and value profile.
func CreateTestAsset(t *testing.T, db *gorm.DB, portfolioID string, assetType models.AssetType, quantity, buyPrice, currentPrice float64) *models.Asset {
	t.Helper()

	n := nextID()
	asset := &models.Asset{
		PortfolioID:  portfolioID,
		Name:         fmt.Sprintf("Test Asset %d", n),
		Ticker:       fmt.Sprintf("TST%d", n),
		Type:         assetType,
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		CurrentPrice: currentPrice,
		Currency:     "EUR",
		BuyDate:      time.Now().AddDate(-1, 0, 0),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestProfile creates an investor profile with the given answers.
func CreateTestProfile(t *testing.T, db *gorm.DB, riskTolerance, horizon, experience string, score int) *models.InvestorProfile {
	t.Helper()

	profile := &models.InvestorProfile{
		RiskTolerance:     riskTolerance,
		InvestmentHorizon: horizon,
		Experience:        experience,
		Score:             score,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestMarketData creates a market quote for the given ticker.
func CreateTestMarketData(t *testing.T, db *gorm.DB, ticker string, price, changePercent float64, timestamp time.Time) *models.MarketData {
	t.Helper()

	row := &models.MarketData{
		Ticker:        ticker,
		Price:         price,
		Change:        price * changePercent / 100,
		ChangePercent: changePercent,
		Volume:        1000000,
		Timestamp:     timestamp,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test market data: %v", err)
	}
	return row
}

// CreateTestNewsItem creates a news item in the given category.
func CreateTestNewsItem(t *testing.T, db *gorm.DB, category string, publishedAt time.Time) *models.NewsItem {
	t.Helper()

	n := nextID()
	item := &models.NewsItem{
		Title:       fmt.Sprintf("Test News %d", n),
		Description: "Test description",
		URL:         fmt.Sprintf("https://example.com/news-%d", n),
		Source:      "Test Source",
		Category:    category,
		PublishedAt: publishedAt,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test news item: %v", err)
	}
	return item
}

// CreateTestWatchlistItem creates a watchlist entry for the given ticker.
func CreateTestWatchlistItem(t *testing.T, db *gorm.DB, ticker string) *models.WatchlistItem {
	t.Helper()

	item := &models.WatchlistItem{
		Ticker: ticker,
		Name:   fmt.Sprintf("Test Instrument %s", ticker),
		Type:   "stock",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test watchlist item: %v", err)
	}
	return item
}
