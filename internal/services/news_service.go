package services

import (
	"gorm.io/gorm"

	"finboard/internal/fixtures"
	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/pagination"
)

// allCategories is the category filter value meaning "no filter".
const allCategories = "all"

// newsService serves curated news with a static fixture fallback.
type newsService struct {
	db *gorm.DB
}

// NewNewsService creates a new NewsServicer.
func NewNewsService(db *gorm.DB) NewsServicer {
	return &newsService{db: db}
}

// ListNews returns news newest first, optionally filtered by category. An
// empty or unreachable database degrades to the static fixture set.
func (s *newsService) ListNews(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
	page.Defaults()

	items, total, err := s.fetch(category, page)
	if err != nil {
		logger.Get().Warnw("news unavailable, serving fixtures", "error", err.Error())
		return fixtureNewsPage(category, page), nil
	}
	if total == 0 {
		return fixtureNewsPage(category, page), nil
	}

	result := pagination.NewPageResponse(items, page.Page, page.PageSize, total)
	return &result, nil
}

func (s *newsService) fetch(category string, page pagination.PageRequest) ([]models.NewsItem, int64, error) {
	base := s.db.Model(&models.NewsItem{})
	if filtered(category) {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.NewsItem
	if err := base.Order("published_at DESC").Scopes(pagination.Paginate(page)).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// fixtureNewsPage pages through the static news set in memory.
func fixtureNewsPage(category string, page pagination.PageRequest) *pagination.PageResponse[models.NewsItem] {
	all := fixtures.News()
	if filtered(category) {
		kept := all[:0]
		for i := range all {
			if all[i].Category == category {
				kept = append(kept, all[i])
			}
		}
		all = kept
	}

	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}

	result := pagination.NewPageResponse(all[start:end], page.Page, page.PageSize, total)
	return &result
}

func filtered(category string) bool {
	return category != "" && category != allCategories
}
