package models

import "time"

// AssetType represents the type of a portfolio asset.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeETF        AssetType = "etf"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeSavings    AssetType = "savings"
)

// Asset represents a single holding in the portfolio.
// Quantity, BuyPrice and CurrentPrice are never negative; this is enforced
// at the request binding layer.
type Asset struct {
	Base
	PortfolioID  string    `gorm:"type:uuid;not null" json:"portfolioId"`
	Name         string    `gorm:"not null" json:"name"`
	Ticker       string    `gorm:"not null" json:"ticker"`
	Type         AssetType `gorm:"not null" json:"type"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	BuyPrice     float64   `gorm:"not null" json:"buyPrice"`
	CurrentPrice float64   `gorm:"not null" json:"currentPrice"`
	Currency     string    `gorm:"not null;default:'EUR'" json:"currency"`
	Category     string    `json:"category"`
	BuyDate      time.Time `json:"buyDate"`

	Portfolio Portfolio `gorm:"foreignKey:PortfolioID" json:"-"`
}

// TotalValue returns the current market value of the holding.
func (a *Asset) TotalValue() float64 {
	return a.Quantity * a.CurrentPrice
}

// TotalCost returns the acquisition cost of the holding.
func (a *Asset) TotalCost() float64 {
	return a.Quantity * a.BuyPrice
}

// GainLoss returns the absolute unrealized gain or loss.
func (a *Asset) GainLoss() float64 {
	return a.TotalValue() - a.TotalCost()
}

// GainLossPercent returns the unrealized gain or loss relative to cost.
// Zero-cost holdings report 0 rather than dividing by zero.
func (a *Asset) GainLossPercent() float64 {
	cost := a.TotalCost()
	if cost <= 0 {
		return 0
	}
	return a.GainLoss() / cost * 100
}
