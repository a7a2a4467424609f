package services

import (
	"time"

	"finboard/internal/analytics"
	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/series"
)

// EnrichedAsset is an asset with derived valuation fields and synthetic
// chart series attached.
type EnrichedAsset struct {
	models.Asset
	TotalValue      float64             `json:"totalValue"`
	TotalCost       float64             `json:"totalCost"`
	GainLoss        float64             `json:"gainLoss"`
	GainLossPercent float64             `json:"gainLossPercent"`
	SparklineData   []float64           `json:"sparklineData"`
	HistoryData     []series.PricePoint `json:"historyData"`
}

// NewAsset holds the fields needed to create an asset.
type NewAsset struct {
	Name         string
	Ticker       string
	Type         models.AssetType
	Quantity     float64
	BuyPrice     float64
	CurrentPrice float64
	Currency     string
	Category     string
	BuyDate      time.Time
}

// AssetServicer defines the contract for asset CRUD and enrichment.
type AssetServicer interface {
	ListAssets() ([]EnrichedAsset, error)
	CreateAsset(input NewAsset) (*models.Asset, error)
	DeleteAsset(id string) error
}

// Insights aggregates every derived analytic for the insights page.
type Insights struct {
	Profile              *models.InvestorProfile        `json:"profile"`
	DiversificationScore int                            `json:"diversificationScore"`
	Allocations          []analytics.AssetAllocation    `json:"allocations"`
	Suggestions          []analytics.RebalanceSuggestion `json:"suggestions"`
	Alerts               []analytics.ExposureAlert      `json:"alerts"`
	RiskIndicators       analytics.RiskIndicators       `json:"riskIndicators"`
	TotalPortfolioValue  float64                        `json:"totalPortfolioValue"`
}

// InsightServicer defines the contract for portfolio insights and the
// investor questionnaire.
type InsightServicer interface {
	GetInsights() (*Insights, error)
	CreateProfile(riskTolerance, investmentHorizon, experience, objectives string) (*models.InvestorProfile, error)
}

// AllocationSlice is one segment of the portfolio allocation donut.
type AllocationSlice struct {
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// Performer is an asset ranked by relative performance.
type Performer struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Ticker          string           `json:"ticker"`
	Type            models.AssetType `json:"type"`
	TotalValue      float64          `json:"totalValue"`
	TotalCost       float64          `json:"totalCost"`
	GainLoss        float64          `json:"gainLoss"`
	GainLossPercent float64          `json:"gainLossPercent"`
}

// PortfolioOverview is the dashboard headline payload.
type PortfolioOverview struct {
	TotalValue           float64            `json:"totalValue"`
	TotalCost            float64            `json:"totalCost"`
	TotalGainLoss        float64            `json:"totalGainLoss"`
	TotalGainLossPercent float64            `json:"totalGainLossPercent"`

	// Locale-formatted strings in the settings currency, for display.
	TotalValueDisplay           string `json:"totalValueDisplay"`
	TotalGainLossDisplay        string `json:"totalGainLossDisplay"`
	TotalGainLossPercentDisplay string `json:"totalGainLossPercentDisplay"`

	AssetCount           int                `json:"assetCount"`
	Allocation           []AllocationSlice  `json:"allocation"`
	TopPerformers        []Performer        `json:"topPerformers"`
	WorstPerformers      []Performer        `json:"worstPerformers"`
	History              []series.MonthPoint `json:"history"`
}

// PortfolioServicer defines the contract for the portfolio overview.
type PortfolioServicer interface {
	GetOverview() (*PortfolioOverview, error)
}

// MarketQuote is a market data row enriched with display metadata and a
// synthetic intraday series.
type MarketQuote struct {
	models.MarketData
	Name         string             `json:"name"`
	Type         string             `json:"type"`
	Currency     string             `json:"currency"`
	IntradayData []series.TimePoint `json:"intradayData"`
}

// MarketServicer defines the contract for market quotes.
type MarketServicer interface {
	GetMarket() ([]MarketQuote, error)
}

// NewsServicer defines the contract for curated news.
type NewsServicer interface {
	ListNews(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error)
}

// ToggleResult describes the outcome of a watchlist toggle.
type ToggleResult struct {
	Action string                `json:"action"`
	Ticker string                `json:"ticker"`
	Item   *models.WatchlistItem `json:"item,omitempty"`
}

// WatchlistServicer defines the contract for the watchlist.
type WatchlistServicer interface {
	ListItems() ([]models.WatchlistItem, error)
	ToggleItem(ticker, name, itemType string) (*ToggleResult, error)
}
