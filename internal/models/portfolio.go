package models

// Portfolio groups assets under a named portfolio. The application assumes a
// single implicit portfolio; the earliest-created row is the current one.
type Portfolio struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Currency string `gorm:"not null;default:'EUR'" json:"currency"`

	Assets []Asset `gorm:"foreignKey:PortfolioID" json:"assets,omitempty"`
}
