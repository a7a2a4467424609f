package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/services"
)

// --- mock news service ---

type mockNewsService struct {
	listNewsFn func(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error)
}

func (m *mockNewsService) ListNews(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
	if m.listNewsFn != nil {
		return m.listNewsFn(category, page)
	}
	resp := pagination.NewPageResponse([]models.NewsItem{}, 1, 20, 0)
	return &resp, nil
}

var _ services.NewsServicer = (*mockNewsService)(nil)

func setupNewsRouter(handler *NewsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/news", handler.ListNews)
	return r
}

func TestNewsHandler_ListNews(t *testing.T) {
	t.Run("returns 200 with page envelope", func(t *testing.T) {
		svc := &mockNewsService{
			listNewsFn: func(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
				resp := pagination.NewPageResponse([]models.NewsItem{
					{Title: "ECB holds key interest rates steady", Category: "Macro"},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupNewsRouter(NewNewsHandler(svc))

		rec := doRequest(r, "GET", "/news", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(1) {
			t.Errorf("expected 1 total item, got %v", result["total_items"])
		}
		if _, ok := result["data"].([]interface{}); !ok {
			t.Errorf("expected data array, got %v", result["data"])
		}
	})

	t.Run("passes category and pagination through", func(t *testing.T) {
		var gotCategory string
		var gotPage pagination.PageRequest
		svc := &mockNewsService{
			listNewsFn: func(category string, page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
				gotCategory = category
				gotPage = page
				resp := pagination.NewPageResponse([]models.NewsItem{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupNewsRouter(NewNewsHandler(svc))

		rec := doRequest(r, "GET", "/news?category=Crypto&page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCategory != "Crypto" {
			t.Errorf("expected category Crypto, got %q", gotCategory)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("expected page 2 size 5, got %+v", gotPage)
		}
	})

	t.Run("returns 400 on bad pagination", func(t *testing.T) {
		r := setupNewsRouter(NewNewsHandler(&mockNewsService{}))

		rec := doRequest(r, "GET", "/news?page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
