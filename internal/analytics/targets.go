// Package analytics computes derived portfolio insights: allocation
// aggregates, a diversification score, rebalancing suggestions, exposure
// alerts and coarse risk indicators. All functions are pure and operate on
// in-memory snapshots; they never touch persistence.
package analytics

import "finboard/internal/models"

// TargetBand defines the recommended allocation band for an asset type.
type TargetBand struct {
	Min    float64
	Max    float64
	Target float64
	Label  string
}

// TargetAllocation is the fixed recommended allocation table. Asset types
// without an entry are skipped by the advisor and the alert generator.
var TargetAllocation = map[models.AssetType]TargetBand{
	models.AssetTypeStock:      {Min: 20, Max: 40, Target: 30, Label: "Stocks"},
	models.AssetTypeETF:        {Min: 15, Max: 35, Target: 25, Label: "ETFs"},
	models.AssetTypeCrypto:     {Min: 5, Max: 15, Target: 10, Label: "Crypto"},
	models.AssetTypeRealEstate: {Min: 20, Max: 40, Target: 25, Label: "Real Estate"},
	models.AssetTypeSavings:    {Min: 5, Max: 20, Target: 10, Label: "Savings"},
}

// typeVolatility holds assumed annualized volatility per asset type, used by
// the risk estimator. Unknown types fall back to defaultVolatility.
var typeVolatility = map[models.AssetType]float64{
	models.AssetTypeStock:      0.18,
	models.AssetTypeETF:        0.12,
	models.AssetTypeCrypto:     0.60,
	models.AssetTypeRealEstate: 0.06,
	models.AssetTypeSavings:    0.02,
}

const defaultVolatility = 0.15

// marketVolatility is the implicit market baseline used for beta.
const marketVolatility = 0.15

// riskFreeRatePct is the assumed risk-free rate, in percent.
const riskFreeRatePct = 3.0
