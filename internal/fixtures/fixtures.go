// Package fixtures holds the static demo datasets used when the database is
// empty or unreachable. Market, news and watchlist reads degrade to these
// rather than surfacing an error (read-through with fixture fallback).
package fixtures

import (
	"time"

	"finboard/internal/models"
)

// MarketLabel carries display metadata for a known market ticker.
type MarketLabel struct {
	Name     string
	Type     string
	Currency string
}

// MarketLabels maps known tickers to display metadata. Unknown tickers are
// shown as-is with USD.
var MarketLabels = map[string]MarketLabel{
	"^FCHI":   {Name: "CAC 40", Type: "index", Currency: "EUR"},
	"^GSPC":   {Name: "S&P 500", Type: "index", Currency: "USD"},
	"^IXIC":   {Name: "NASDAQ", Type: "index", Currency: "USD"},
	"BTC-USD": {Name: "Bitcoin", Type: "crypto", Currency: "USD"},
	"ETH-USD": {Name: "Ethereum", Type: "crypto", Currency: "USD"},
	"GC=F":    {Name: "Gold", Type: "commodity", Currency: "USD"},
}

// Market returns the static market quotes.
func Market(now time.Time) []models.MarketData {
	return []models.MarketData{
		{ID: "fixture-1", Ticker: "^FCHI", Price: 7425.3, Change: 45.2, ChangePercent: 0.61, Volume: 3200000000, Timestamp: now},
		{ID: "fixture-2", Ticker: "^GSPC", Price: 5890.45, Change: 22.1, ChangePercent: 0.38, Volume: 4100000000, Timestamp: now},
		{ID: "fixture-3", Ticker: "^IXIC", Price: 18920.8, Change: -35.6, ChangePercent: -0.19, Volume: 5300000000, Timestamp: now},
		{ID: "fixture-4", Ticker: "BTC-USD", Price: 95000, Change: 1250, ChangePercent: 1.33, Volume: 28000000000, Timestamp: now},
		{ID: "fixture-5", Ticker: "ETH-USD", Price: 3400, Change: -45, ChangePercent: -1.31, Volume: 12000000000, Timestamp: now},
		{ID: "fixture-6", Ticker: "GC=F", Price: 2345.6, Change: 12.3, ChangePercent: 0.53, Volume: 180000, Timestamp: now},
	}
}

// News returns the static news items.
func News() []models.NewsItem {
	return []models.NewsItem{
		{
			Base:           models.Base{ID: "fixture-1"},
			Title:          "ECB holds key interest rates steady",
			Description:    "The central bank kept rates unchanged, signalling a pause in the tightening cycle. European markets reacted positively to the announcement.",
			URL:            "https://example.com/ecb-rates",
			Source:         "Les Echos",
			Category:       "Macro",
			RelevanceScore: 0.95,
			ImageURL:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=400",
			PublishedAt:    time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-2"},
			Title:          "Bitcoin crosses $95,000 for the first time",
			Description:    "The flagship cryptocurrency reached a new all-time high, driven by institutional adoption and the approval of new spot Bitcoin ETFs.",
			URL:            "https://example.com/btc-95k",
			Source:         "CoinDesk",
			Category:       "Crypto",
			RelevanceScore: 0.92,
			ImageURL:       "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=400",
			PublishedAt:    time.Date(2026, 2, 28, 7, 15, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-3"},
			Title:          "LVMH posts record Q4 results",
			Description:    "The French luxury group beat expectations with quarterly revenue up 13%. Shares climbed 4% in pre-market trading.",
			URL:            "https://example.com/lvmh-q4",
			Source:         "Reuters",
			Category:       "Stocks",
			RelevanceScore: 0.88,
			ImageURL:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400",
			PublishedAt:    time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-4"},
			Title:          "Paris real estate shows signs of recovery",
			Description:    "After two years of decline, prices per square metre are rising again in several districts as the market regains confidence.",
			URL:            "https://example.com/paris-property",
			Source:         "Les Echos",
			Category:       "Real Estate",
			RelevanceScore: 0.85,
			ImageURL:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=400",
			PublishedAt:    time.Date(2026, 2, 27, 14, 30, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-5"},
			Title:          "European ETFs see record inflows",
			Description:    "European ETFs collected over 200 billion euros this year, a historic record as investors favour passive index products.",
			URL:            "https://example.com/etf-record",
			Source:         "Reuters",
			Category:       "ETF",
			RelevanceScore: 0.82,
			ImageURL:       "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?w=400",
			PublishedAt:    time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-6"},
			Title:          "Solana overtakes Ethereum in daily transactions",
			Description:    "The Solana network now processes more transactions per day than Ethereum, marking a turning point in the blockchain race.",
			URL:            "https://example.com/sol-eth",
			Source:         "CoinDesk",
			Category:       "Crypto",
			RelevanceScore: 0.78,
			ImageURL:       "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=400",
			PublishedAt:    time.Date(2026, 2, 26, 16, 45, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-7"},
			Title:          "Fed hints at possible rate cut in Q2 2026",
			Description:    "The Federal Reserve chair indicated that economic conditions could justify monetary easing in the second quarter.",
			URL:            "https://example.com/fed-rates",
			Source:         "Bloomberg",
			Category:       "Macro",
			RelevanceScore: 0.93,
			ImageURL:       "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?w=400",
			PublishedAt:    time.Date(2026, 2, 26, 20, 0, 0, 0, time.UTC),
		},
		{
			Base:           models.Base{ID: "fixture-8"},
			Title:          "Amundi launches low-fee ESG ETF",
			Description:    "The passive management giant introduced a World ESG ETF with 0.12% fees, the lowest on the European market.",
			URL:            "https://example.com/amundi-etf",
			Source:         "Boursorama",
			Category:       "ETF",
			RelevanceScore: 0.75,
			ImageURL:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
			PublishedAt:    time.Date(2026, 2, 26, 9, 0, 0, 0, time.UTC),
		},
	}
}

// Watchlist returns the static watchlist entries.
func Watchlist(now time.Time) []models.WatchlistItem {
	return []models.WatchlistItem{
		{ID: "fixture-1", Ticker: "NVDA", Name: "NVIDIA", Type: "stock", AddedAt: now},
		{ID: "fixture-2", Ticker: "ASML.AS", Name: "ASML Holding", Type: "stock", AddedAt: now},
		{ID: "fixture-3", Ticker: "ADA-USD", Name: "Cardano", Type: "crypto", AddedAt: now},
		{ID: "fixture-4", Ticker: "IWDA.AS", Name: "iShares MSCI World", Type: "etf", AddedAt: now},
	}
}
