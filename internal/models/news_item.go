package models

import "time"

// NewsItem represents a curated financial news article.
type NewsItem struct {
	Base
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	URL            string    `gorm:"not null" json:"url"`
	Source         string    `json:"source"`
	Category       string    `gorm:"index" json:"category"`
	RelevanceScore float64   `json:"relevanceScore"`
	ImageURL       string    `json:"imageUrl"`
	PublishedAt    time.Time `gorm:"not null;index" json:"publishedAt"`
}
