package services

import (
	"testing"
	"time"

	"finboard/internal/testutil"
)

func TestGetMarket(t *testing.T) {
	t.Run("empty_database_serves_fixtures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		quotes, err := svc.GetMarket()
		testutil.AssertNoError(t, err)

		if len(quotes) != 6 {
			t.Fatalf("expected 6 fixture quotes, got %d", len(quotes))
		}
		tickers := map[string]bool{}
		for _, q := range quotes {
			tickers[q.Ticker] = true
		}
		if !tickers["^FCHI"] || !tickers["BTC-USD"] {
			t.Errorf("expected fixture tickers, got %v", tickers)
		}
	})

	t.Run("latest_row_per_ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		now := time.Now()
		testutil.CreateTestMarketData(t, db, "^GSPC", 5800, 0.2, now.Add(-time.Hour))
		testutil.CreateTestMarketData(t, db, "^GSPC", 5890.45, 0.38, now)
		testutil.CreateTestMarketData(t, db, "BTC-USD", 95000, 1.33, now)

		quotes, err := svc.GetMarket()
		testutil.AssertNoError(t, err)

		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		for _, q := range quotes {
			if q.Ticker == "^GSPC" && q.Price != 5890.45 {
				t.Errorf("expected latest ^GSPC price 5890.45, got %v", q.Price)
			}
		}
	})

	t.Run("enriches_with_labels_and_intraday", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)
		testutil.CreateTestMarketData(t, db, "BTC-USD", 95000, 1.33, time.Now())

		quotes, err := svc.GetMarket()
		testutil.AssertNoError(t, err)

		q := quotes[0]
		if q.Name != "Bitcoin" {
			t.Errorf("expected label Bitcoin, got %s", q.Name)
		}
		if q.Type != "crypto" {
			t.Errorf("expected type crypto, got %s", q.Type)
		}
		if len(q.IntradayData) != intradayPoints {
			t.Errorf("expected %d intraday points, got %d", intradayPoints, len(q.IntradayData))
		}
		if q.IntradayData[len(q.IntradayData)-1].Price != 95000 {
			t.Errorf("expected intraday series to end on the quote price, got %v", q.IntradayData[len(q.IntradayData)-1].Price)
		}
	})

	t.Run("unknown_ticker_gets_default_label", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)
		testutil.CreateTestMarketData(t, db, "XYZ", 12.5, 0, time.Now())

		quotes, err := svc.GetMarket()
		testutil.AssertNoError(t, err)

		if quotes[0].Name != "XYZ" {
			t.Errorf("expected ticker as name, got %s", quotes[0].Name)
		}
		if quotes[0].Type != "unknown" {
			t.Errorf("expected type unknown, got %s", quotes[0].Type)
		}
		if quotes[0].Currency != "USD" {
			t.Errorf("expected USD fallback, got %s", quotes[0].Currency)
		}
	})
}
