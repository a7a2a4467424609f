// Package series produces synthetic time series for charting. The shapes are
// deterministic (anchored on real prices, ending exactly on the current
// value) with randomized noise from an injected source, so charts look alive
// without pretending to be historical data.
package series

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// PricePoint is a dated price sample.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// TimePoint is an intraday price sample.
type TimePoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// MonthPoint is a monthly portfolio value sample.
type MonthPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Generator produces synthetic series from a shared random source.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// NewWithClock creates a Generator with a fixed clock, for tests.
func NewWithClock(seed int64, now func() time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// Sparkline interpolates from the buy price to the current price over the
// given number of points, with noise proportional to the current price. The
// series never drops below 60% of the buy price and ends exactly on the
// current price.
func (g *Generator) Sparkline(currentPrice, buyPrice float64, points int) []float64 {
	if points < 1 {
		return []float64{}
	}
	data := make([]float64, 0, points)
	trend := (currentPrice - buyPrice) / float64(points)
	price := buyPrice

	for i := 0; i < points; i++ {
		noise := (g.rng.Float64() - 0.5) * currentPrice * 0.04
		price += trend + noise
		price = math.Max(buyPrice*0.6, price)
		data = append(data, math.Round(price*100)/100)
	}

	data[len(data)-1] = currentPrice
	return data
}

// PriceHistory produces weekly price samples over the given number of months,
// trending from the buy price to the current price. The floor is 70% of the
// buy price and the final sample is the current price.
func (g *Generator) PriceHistory(currentPrice, buyPrice float64, months int) []PricePoint {
	data := []PricePoint{}
	now := g.now()
	trend := (currentPrice - buyPrice) / float64(months*30)
	price := buyPrice

	for i := months; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		for day := 1; day <= 28; day += 7 {
			d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, now.Location())
			if d.After(now) {
				break
			}
			noise := (g.rng.Float64() - 0.5) * currentPrice * 0.03
			price += trend*7 + noise
			price = math.Max(buyPrice*0.7, price)
			data = append(data, PricePoint{
				Date:  d.Format("2006-01-02"),
				Price: math.Round(price*100) / 100,
			})
		}
	}

	if len(data) > 0 {
		data[len(data)-1].Price = currentPrice
	}
	return data
}

// Intraday produces a trading-day price walk in 5-minute steps from 09:00.
// The walk drifts toward the day's change with mean reversion, stays within
// ±5% of the base price, and ends exactly on it.
func (g *Generator) Intraday(basePrice, changePercent float64, points int) []TimePoint {
	if points < 1 {
		return []TimePoint{}
	}
	data := make([]TimePoint, 0, points)
	const startHour = 9
	const minuteStep = 5
	volatility := math.Abs(changePercent)*0.3 + 0.1

	price := basePrice * (1 - changePercent/100)

	for i := 0; i < points; i++ {
		totalMinutes := i * minuteStep
		label := fmt.Sprintf("%02d:%02d", startHour+totalMinutes/60, totalMinutes%60)

		progress := 0.0
		if points > 1 {
			progress = float64(i) / float64(points-1)
		}
		trendComponent := changePercent / 100 * basePrice * progress
		noise := (g.rng.Float64() - 0.5) * basePrice * (volatility / 100)
		meanReversion := (basePrice + trendComponent - price) * 0.05

		price += trendComponent/float64(points) + noise + meanReversion
		price = math.Max(price, basePrice*0.95)
		price = math.Min(price, basePrice*1.05)

		if i == points-1 {
			price = basePrice
		}

		data = append(data, TimePoint{Time: label, Price: math.Round(price*100) / 100})
	}

	return data
}

// PortfolioHistory produces 13 monthly samples ending on the given total,
// starting from 72% of it, with mild noise and a floor at 90% of the start.
func (g *Generator) PortfolioHistory(totalValue float64) []MonthPoint {
	const months = 12
	data := make([]MonthPoint, 0, months+1)
	now := g.now()

	startValue := totalValue * 0.72
	trend := (totalValue - startValue) / months

	value := startValue
	for i := months; i >= 0; i-- {
		date := now.AddDate(0, -i, 0)
		noise := (g.rng.Float64() - 0.45) * totalValue * 0.025
		value += trend + noise
		value = math.Max(startValue*0.9, value)

		data = append(data, MonthPoint{
			Month: fmt.Sprintf("%s %02d", date.Month().String()[:3], date.Year()%100),
			Value: math.Round(value),
		})
	}

	data[len(data)-1].Value = math.Round(totalValue)
	return data
}
