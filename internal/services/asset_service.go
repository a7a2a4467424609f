package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/series"
)

const (
	sparklinePoints = 20
	historyMonths   = 12
)

// assetService handles asset CRUD and enrichment.
type assetService struct {
	db            *gorm.DB
	portfolioName string
}

// NewAssetService creates a new AssetServicer. portfolioName is used when
// the implicit portfolio has to be created on first write.
func NewAssetService(db *gorm.DB, portfolioName string) AssetServicer {
	return &assetService{db: db, portfolioName: portfolioName}
}

// ListAssets returns all assets enriched with derived valuation fields,
// a sparkline and a weekly price history, most recently updated first.
func (s *assetService) ListAssets() ([]EnrichedAsset, error) {
	var assets []models.Asset
	if err := s.db.Order("updated_at DESC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	gen := series.New(time.Now().UnixNano())
	enriched := make([]EnrichedAsset, 0, len(assets))
	for i := range assets {
		a := assets[i]
		enriched = append(enriched, EnrichedAsset{
			Asset:           a,
			TotalValue:      a.TotalValue(),
			TotalCost:       a.TotalCost(),
			GainLoss:        a.GainLoss(),
			GainLossPercent: a.GainLossPercent(),
			SparklineData:   gen.Sparkline(a.CurrentPrice, a.BuyPrice, sparklinePoints),
			HistoryData:     gen.PriceHistory(a.CurrentPrice, a.BuyPrice, historyMonths),
		})
	}

	return enriched, nil
}

// CreateAsset stores a new asset under the implicit portfolio, creating the
// portfolio on first use.
func (s *assetService) CreateAsset(input NewAsset) (*models.Asset, error) {
	portfolio, err := s.ensurePortfolio()
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		PortfolioID:  portfolio.ID,
		Name:         input.Name,
		Ticker:       input.Ticker,
		Type:         input.Type,
		Quantity:     input.Quantity,
		BuyPrice:     input.BuyPrice,
		CurrentPrice: input.CurrentPrice,
		Currency:     input.Currency,
		Category:     input.Category,
		BuyDate:      input.BuyDate,
	}
	if asset.Currency == "" {
		asset.Currency = portfolio.Currency
	}
	if asset.BuyDate.IsZero() {
		asset.BuyDate = time.Now()
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// DeleteAsset removes an asset by ID.
func (s *assetService) DeleteAsset(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Asset{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// ensurePortfolio returns the implicit portfolio, creating it when absent.
// The earliest-created row is the current one.
func (s *assetService) ensurePortfolio() (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.db.Order("created_at ASC").First(&portfolio).Error
	if err == nil {
		return &portfolio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	portfolio = models.Portfolio{Name: s.portfolioName, Currency: "EUR"}
	if err := s.db.Create(&portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}
