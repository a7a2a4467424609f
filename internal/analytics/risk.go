package analytics

import (
	"math"

	"finboard/internal/models"
)

// RiskIndicators holds coarse portfolio-level risk heuristics. These rest on
// fixed per-type volatility assumptions with no historical correlation, so
// they are indicative, not predictive.
type RiskIndicators struct {
	Volatility  float64 `json:"volatility"`
	SharpeRatio float64 `json:"sharpeRatio"`
	MaxDrawdown float64 `json:"maxDrawdown"`
	Beta        float64 `json:"beta"`
}

// Risk estimates portfolio risk from value-weighted per-type volatility
// assumptions. An empty portfolio reports all zeros.
func Risk(assets []models.Asset) RiskIndicators {
	if len(assets) == 0 {
		return RiskIndicators{}
	}

	total := 0.0
	for i := range assets {
		total += assets[i].TotalValue()
	}

	weightedVolatility := 0.0
	portfolioReturn := 0.0

	for i := range assets {
		weight := 0.0
		if total > 0 {
			weight = assets[i].TotalValue() / total
		}

		vol, ok := typeVolatility[assets[i].Type]
		if !ok {
			vol = defaultVolatility
		}

		assetReturn := 0.0
		if assets[i].BuyPrice > 0 {
			assetReturn = (assets[i].CurrentPrice - assets[i].BuyPrice) / assets[i].BuyPrice
		}

		weightedVolatility += weight * vol
		portfolioReturn += weight * assetReturn
	}

	annualizedReturnPct := portfolioReturn * 100

	sharpeRatio := 0.0
	if weightedVolatility > 0 {
		sharpeRatio = (annualizedReturnPct - riskFreeRatePct) / (weightedVolatility * 100)
	}

	// Fixed multiplier heuristic in place of a simulated drawdown.
	maxDrawdown := weightedVolatility * 2.5 * 100

	return RiskIndicators{
		Volatility:  math.Round(weightedVolatility*10000) / 100,
		SharpeRatio: math.Round(sharpeRatio*100) / 100,
		MaxDrawdown: math.Round(maxDrawdown*10) / 10,
		Beta:        math.Round(weightedVolatility/marketVolatility*100) / 100,
	}
}
