package services

import (
	"time"

	"gorm.io/gorm"

	"finboard/internal/fixtures"
	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/series"
)

const intradayPoints = 78

// marketService serves market quotes with a static fixture fallback.
type marketService struct {
	db *gorm.DB
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(db *gorm.DB) MarketServicer {
	return &marketService{db: db}
}

// GetMarket returns the most recent quote per ticker, enriched with display
// metadata and a synthetic intraday series. When the database is empty or
// unreachable it degrades to the static fixture set instead of failing;
// this is a deliberate two-tier read, not a retry policy.
func (s *marketService) GetMarket() ([]MarketQuote, error) {
	rows, err := s.fetchLatest()
	if err != nil {
		logger.Get().Warnw("market data unavailable, serving fixtures", "error", err.Error())
		rows = fixtures.Market(time.Now())
	} else if len(rows) == 0 {
		rows = fixtures.Market(time.Now())
	}

	gen := series.New(time.Now().UnixNano())
	quotes := make([]MarketQuote, 0, len(rows))
	for i := range rows {
		label, ok := fixtures.MarketLabels[rows[i].Ticker]
		if !ok {
			label = fixtures.MarketLabel{Name: rows[i].Ticker, Type: "unknown", Currency: "USD"}
		}
		quotes = append(quotes, MarketQuote{
			MarketData:   rows[i],
			Name:         label.Name,
			Type:         label.Type,
			Currency:     label.Currency,
			IntradayData: gen.Intraday(rows[i].Price, rows[i].ChangePercent, intradayPoints),
		})
	}

	return quotes, nil
}

// fetchLatest reads all quotes newest first and keeps the most recent row
// per ticker.
func (s *marketService) fetchLatest() ([]models.MarketData, error) {
	var rows []models.MarketData
	if err := s.db.Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	latest := rows[:0]
	for i := range rows {
		if seen[rows[i].Ticker] {
			continue
		}
		seen[rows[i].Ticker] = true
		latest = append(latest, rows[i])
	}
	return latest, nil
}
