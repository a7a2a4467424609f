package models

import (
	"time"

	"finboard/internal/uuid"

	"gorm.io/gorm"
)

// Risk tolerance levels accepted by the investor questionnaire.
const (
	RiskConservative   = "conservative"
	RiskModerate       = "moderate"
	RiskAggressive     = "aggressive"
	RiskVeryAggressive = "very_aggressive"
)

// Investment horizon levels accepted by the investor questionnaire.
const (
	HorizonShort    = "short"
	HorizonMedium   = "medium"
	HorizonLong     = "long"
	HorizonVeryLong = "very_long"
)

// Experience levels accepted by the investor questionnaire.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

// InvestorProfile is the result of a questionnaire submission. Rows are
// immutable: a new submission creates a new row and the latest by CreatedAt
// is the current profile. No Base embed, no soft deletes.
type InvestorProfile struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	RiskTolerance     string    `gorm:"not null" json:"riskTolerance"`
	InvestmentHorizon string    `gorm:"not null" json:"investmentHorizon"`
	Experience        string    `gorm:"not null" json:"experience"`
	Objectives        string    `json:"objectives"`
	Score             int       `gorm:"not null" json:"score"`
	CreatedAt         time.Time `gorm:"not null;index" json:"createdAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *InvestorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
