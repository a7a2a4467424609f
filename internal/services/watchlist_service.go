package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/fixtures"
	"finboard/internal/logger"
	"finboard/internal/models"
)

// watchlistService manages followed instruments.
type watchlistService struct {
	db *gorm.DB
}

// NewWatchlistService creates a new WatchlistServicer.
func NewWatchlistService(db *gorm.DB) WatchlistServicer {
	return &watchlistService{db: db}
}

// ListItems returns the watchlist newest first. An empty or unreachable
// database degrades to the static fixture set.
func (s *watchlistService) ListItems() ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := s.db.Order("added_at DESC").Find(&items).Error; err != nil {
		logger.Get().Warnw("watchlist unavailable, serving fixtures", "error", err.Error())
		return fixtures.Watchlist(time.Now()), nil
	}
	if len(items) == 0 {
		return fixtures.Watchlist(time.Now()), nil
	}
	return items, nil
}

// ToggleItem adds the ticker when absent and removes it when present.
func (s *watchlistService) ToggleItem(ticker, name, itemType string) (*ToggleResult, error) {
	var existing models.WatchlistItem
	err := s.db.Where("ticker = ?", ticker).First(&existing).Error

	switch {
	case err == nil:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &ToggleResult{Action: "removed", Ticker: ticker}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.WatchlistItem{Ticker: ticker, Name: name, Type: itemType}
		if err := s.db.Create(item).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &ToggleResult{Action: "added", Ticker: ticker, Item: item}, nil

	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
