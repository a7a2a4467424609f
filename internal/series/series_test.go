package series

import (
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestSparkline(t *testing.T) {
	t.Run("length_and_final_anchor", func(t *testing.T) {
		g := New(42)
		data := g.Sparkline(228.50, 155.30, 20)

		if len(data) != 20 {
			t.Fatalf("expected 20 points, got %d", len(data))
		}
		if data[19] != 228.50 {
			t.Errorf("expected last point to be the current price, got %v", data[19])
		}
	})

	t.Run("floor_at_60_percent_of_buy", func(t *testing.T) {
		g := New(7)
		// Steep decline invites the floor.
		data := g.Sparkline(10, 100, 20)

		for i, p := range data[:19] {
			if p < 60 {
				t.Errorf("point %d below floor: %v", i, p)
			}
		}
	})

	t.Run("deterministic_for_same_seed", func(t *testing.T) {
		a := New(99).Sparkline(150, 100, 20)
		b := New(99).Sparkline(150, 100, 20)

		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seeded runs diverge at point %d: %v vs %v", i, a[i], b[i])
			}
		}
	})

	t.Run("non_positive_points_yield_empty_series", func(t *testing.T) {
		g := New(1)
		if data := g.Sparkline(150, 100, 0); len(data) != 0 {
			t.Errorf("expected empty series for 0 points, got %v", data)
		}
		if data := g.Sparkline(150, 100, -3); len(data) != 0 {
			t.Errorf("expected empty series for negative points, got %v", data)
		}
	})

	t.Run("single_point_is_current_price", func(t *testing.T) {
		data := New(1).Sparkline(150, 100, 1)
		if len(data) != 1 || data[0] != 150 {
			t.Errorf("expected [150], got %v", data)
		}
	})
}

func TestPriceHistory(t *testing.T) {
	t.Run("final_sample_is_current_price", func(t *testing.T) {
		g := NewWithClock(1, fixedClock())
		data := g.PriceHistory(95.10, 72.40, 12)

		if len(data) == 0 {
			t.Fatal("expected samples")
		}
		if data[len(data)-1].Price != 95.10 {
			t.Errorf("expected last sample at current price, got %v", data[len(data)-1].Price)
		}
	})

	t.Run("weekly_cadence_over_a_year", func(t *testing.T) {
		g := NewWithClock(1, fixedClock())
		data := g.PriceHistory(95.10, 72.40, 12)

		// Four samples per month over 13 partial months, minus days past
		// the clock date in the current month.
		if len(data) < 48 || len(data) > 52 {
			t.Errorf("expected roughly weekly samples over a year, got %d", len(data))
		}
		for _, p := range data {
			if _, err := time.Parse("2006-01-02", p.Date); err != nil {
				t.Fatalf("bad date format %q: %v", p.Date, err)
			}
		}
	})

	t.Run("no_future_dates", func(t *testing.T) {
		now := fixedClock()()
		g := NewWithClock(3, fixedClock())

		for _, p := range g.PriceHistory(50, 40, 12) {
			d, err := time.Parse("2006-01-02", p.Date)
			if err != nil {
				t.Fatalf("bad date %q: %v", p.Date, err)
			}
			if d.After(now) {
				t.Errorf("sample dated in the future: %s", p.Date)
			}
		}
	})

	t.Run("floor_at_70_percent_of_buy", func(t *testing.T) {
		g := NewWithClock(5, fixedClock())
		data := g.PriceHistory(10, 100, 12)

		for i, p := range data[:len(data)-1] {
			if p.Price < 70 {
				t.Errorf("sample %d below floor: %v", i, p.Price)
			}
		}
	})
}

func TestIntraday(t *testing.T) {
	t.Run("length_labels_and_anchor", func(t *testing.T) {
		g := New(11)
		data := g.Intraday(5890.45, 0.38, 78)

		if len(data) != 78 {
			t.Fatalf("expected 78 points, got %d", len(data))
		}
		if data[0].Time != "09:00" {
			t.Errorf("expected first label 09:00, got %s", data[0].Time)
		}
		if data[1].Time != "09:05" {
			t.Errorf("expected second label 09:05, got %s", data[1].Time)
		}
		// 77 five-minute steps past 09:00.
		if data[77].Time != "15:25" {
			t.Errorf("expected last label 15:25, got %s", data[77].Time)
		}
		if data[77].Price != 5890.45 {
			t.Errorf("expected last price at base, got %v", data[77].Price)
		}
	})

	t.Run("stays_within_5_percent_band", func(t *testing.T) {
		g := New(13)
		base := 100.0
		data := g.Intraday(base, -4.2, 78)

		for i, p := range data {
			if p.Price < base*0.95-0.01 || p.Price > base*1.05+0.01 {
				t.Errorf("point %d outside band: %v", i, p.Price)
			}
		}
	})

	t.Run("non_positive_points_yield_empty_series", func(t *testing.T) {
		g := New(5)
		if data := g.Intraday(100, 1.5, 0); len(data) != 0 {
			t.Errorf("expected empty series for 0 points, got %v", data)
		}
		if data := g.Intraday(100, 1.5, -1); len(data) != 0 {
			t.Errorf("expected empty series for negative points, got %v", data)
		}
	})

	t.Run("single_point_opens_and_closes_on_base", func(t *testing.T) {
		data := New(5).Intraday(100, 2.3, 1)
		if len(data) != 1 {
			t.Fatalf("expected 1 point, got %d", len(data))
		}
		if data[0].Time != "09:00" {
			t.Errorf("expected label 09:00, got %s", data[0].Time)
		}
		if data[0].Price != 100 {
			t.Errorf("expected base price 100, got %v", data[0].Price)
		}
	})
}

func TestPortfolioHistory(t *testing.T) {
	t.Run("thirteen_months_ending_on_total", func(t *testing.T) {
		g := NewWithClock(21, fixedClock())
		data := g.PortfolioHistory(125000)

		if len(data) != 13 {
			t.Fatalf("expected 13 points, got %d", len(data))
		}
		if data[12].Value != 125000 {
			t.Errorf("expected last value 125000, got %v", data[12].Value)
		}
	})

	t.Run("month_labels", func(t *testing.T) {
		g := NewWithClock(21, fixedClock())
		data := g.PortfolioHistory(50000)

		if data[12].Month != "Mar 26" {
			t.Errorf("expected current month label Mar 26, got %q", data[12].Month)
		}
		if data[0].Month != "Mar 25" {
			t.Errorf("expected first month label Mar 25, got %q", data[0].Month)
		}
	})

	t.Run("starts_near_72_percent", func(t *testing.T) {
		g := NewWithClock(8, fixedClock())
		total := 100000.0
		data := g.PortfolioHistory(total)

		// First point is the 72% start plus one trend step and noise.
		if data[0].Value < total*0.62 || data[0].Value > total*0.82 {
			t.Errorf("expected first value near 72%% of total, got %v", data[0].Value)
		}
	})

	t.Run("values_never_below_floor", func(t *testing.T) {
		g := NewWithClock(9, fixedClock())
		total := 80000.0
		floor := total * 0.72 * 0.9

		for i, p := range g.PortfolioHistory(total) {
			if p.Value < floor-1 {
				t.Errorf("point %d below floor: %v", i, p.Value)
			}
		}
	})
}
