package services

import (
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"finboard/internal/analytics"
	apperrors "finboard/internal/errors"
	"finboard/internal/format"
	"finboard/internal/models"
	"finboard/internal/series"
	"finboard/internal/settings"
)

// typeColors are the chart colors per asset type.
var typeColors = map[models.AssetType]string{
	models.AssetTypeStock:      "#818cf8",
	models.AssetTypeETF:        "#a78bfa",
	models.AssetTypeCrypto:     "#f59e0b",
	models.AssetTypeRealEstate: "#34d399",
	models.AssetTypeSavings:    "#60a5fa",
}

const fallbackColor = "#888"

const performerCount = 3

// portfolioService computes the dashboard overview.
type portfolioService struct {
	db       *gorm.DB
	settings *settings.Store
}

// NewPortfolioService creates a new PortfolioServicer. Display strings are
// rendered in the currency the settings store currently holds.
func NewPortfolioService(db *gorm.DB, store *settings.Store) PortfolioServicer {
	return &portfolioService{db: db, settings: store}
}

// GetOverview aggregates the full portfolio: totals, allocation slices
// sorted by value, top and worst performers, and a synthetic 13-month
// history ending on the current total.
func (s *portfolioService) GetOverview() (*PortfolioOverview, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalValue := 0.0
	totalCost := 0.0
	performers := make([]Performer, 0, len(assets))

	for i := range assets {
		a := assets[i]
		totalValue += a.TotalValue()
		totalCost += a.TotalCost()
		performers = append(performers, Performer{
			ID:              a.ID,
			Name:            a.Name,
			Ticker:          a.Ticker,
			Type:            a.Type,
			TotalValue:      a.TotalValue(),
			TotalCost:       a.TotalCost(),
			GainLoss:        a.GainLoss(),
			GainLossPercent: a.GainLossPercent(),
		})
	}

	totalGainLoss := totalValue - totalCost
	totalGainLossPercent := 0.0
	if totalCost > 0 {
		totalGainLossPercent = totalGainLoss / totalCost * 100
	}

	allocation := allocationSlices(analytics.Aggregate(assets), totalValue)

	sort.SliceStable(performers, func(a, b int) bool {
		return performers[a].GainLossPercent > performers[b].GainLossPercent
	})
	top := performers
	if len(top) > performerCount {
		top = top[:performerCount]
	}
	worst := make([]Performer, 0, performerCount)
	for i := len(performers) - 1; i >= 0 && len(worst) < performerCount; i-- {
		worst = append(worst, performers[i])
	}

	gen := series.New(time.Now().UnixNano())
	prefs := s.settings.Get()

	return &PortfolioOverview{
		TotalValue:           math.Round(totalValue),
		TotalCost:            math.Round(totalCost),
		TotalGainLoss:        math.Round(totalGainLoss),
		TotalGainLossPercent: math.Round(totalGainLossPercent*100) / 100,
		TotalValueDisplay:    format.Currency(format.DefaultLocale, prefs.Currency, math.Round(totalValue)),
		TotalGainLossDisplay: format.Currency(format.DefaultLocale, prefs.Currency, math.Round(totalGainLoss)),
		TotalGainLossPercentDisplay: format.Percent(format.DefaultLocale,
			math.Round(totalGainLossPercent*100)/100),
		AssetCount:           len(assets),
		Allocation:           allocation,
		TopPerformers:        top,
		WorstPerformers:      worst,
		History:              gen.PortfolioHistory(totalValue),
	}, nil
}

// allocationSlices turns type allocations into labelled, colored chart
// slices sorted by value descending.
func allocationSlices(allocations []analytics.AssetAllocation, totalValue float64) []AllocationSlice {
	slices := make([]AllocationSlice, 0, len(allocations))
	for i := range allocations {
		label := string(allocations[i].Type)
		if band, ok := analytics.TargetAllocation[allocations[i].Type]; ok {
			label = band.Label
		}
		color, ok := typeColors[allocations[i].Type]
		if !ok {
			color = fallbackColor
		}

		percent := 0.0
		if totalValue > 0 {
			percent = math.Round(allocations[i].TotalValue/totalValue*1000) / 10
		}

		slices = append(slices, AllocationSlice{
			Label:   label,
			Color:   color,
			Value:   math.Round(allocations[i].TotalValue),
			Percent: percent,
		})
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Value > slices[b].Value
	})
	return slices
}
