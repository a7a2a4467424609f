package models

import (
	"time"

	"finboard/internal/uuid"

	"gorm.io/gorm"
)

// WatchlistItem represents a followed instrument. Tickers are unique; adding
// an existing ticker removes it (toggle semantics in the service layer).
type WatchlistItem struct {
	ID      string    `gorm:"type:uuid;primaryKey" json:"id"`
	Ticker  string    `gorm:"not null;uniqueIndex" json:"ticker"`
	Name    string    `gorm:"not null" json:"name"`
	Type    string    `gorm:"not null" json:"type"`
	AddedAt time.Time `gorm:"not null" json:"addedAt"`
}

// BeforeCreate hook generates a UUIDv7 and stamps AddedAt for new records
func (w *WatchlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New()
	}
	if w.AddedAt.IsZero() {
		w.AddedAt = time.Now()
	}
	return nil
}
