package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"finboard/internal/analytics"
	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// insightService computes portfolio insights and manages investor profiles.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{db: db}
}

// GetInsights reads a fresh snapshot of all assets plus the latest investor
// profile and computes every derived analytic. An empty portfolio is valid
// and yields zero/empty results; a missing profile is reported as nil.
func (s *insightService) GetInsights() (*Insights, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var profile *models.InvestorProfile
	var latest models.InvestorProfile
	err := s.db.Order("created_at DESC").First(&latest).Error
	switch {
	case err == nil:
		profile = &latest
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No questionnaire submitted yet.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalValue := 0.0
	for i := range assets {
		totalValue += assets[i].TotalValue()
	}

	allocations := analytics.Aggregate(assets)

	return &Insights{
		Profile:              profile,
		DiversificationScore: analytics.DiversificationScore(allocations),
		Allocations:          allocations,
		Suggestions:          analytics.Suggest(allocations),
		Alerts:               analytics.Alerts(allocations),
		RiskIndicators:       analytics.Risk(assets),
		TotalPortfolioValue:  math.Round(totalValue*100) / 100,
	}, nil
}

// CreateProfile stores a new immutable investor profile with its computed
// score. Earlier rows are kept; the latest by CreatedAt is current.
func (s *insightService) CreateProfile(riskTolerance, investmentHorizon, experience, objectives string) (*models.InvestorProfile, error) {
	profile := &models.InvestorProfile{
		RiskTolerance:     riskTolerance,
		InvestmentHorizon: investmentHorizon,
		Experience:        experience,
		Objectives:        objectives,
		Score:             analytics.ProfileScore(riskTolerance, investmentHorizon, experience),
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}
