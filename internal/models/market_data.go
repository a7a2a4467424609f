package models

import (
	"time"

	"finboard/internal/uuid"

	"gorm.io/gorm"
)

// MarketData represents a point-in-time quote for a market instrument.
// This is immutable time-series data: no Base embed, no soft deletes.
type MarketData struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Ticker        string    `gorm:"not null;index" json:"ticker"`
	Price         float64   `gorm:"not null" json:"price"`
	Change        float64   `gorm:"not null" json:"change"`
	ChangePercent float64   `gorm:"not null" json:"changePercent"`
	Volume        float64   `gorm:"not null" json:"volume"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (m *MarketData) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New()
	}
	return nil
}
