package services

import (
	"testing"
	"time"

	"finboard/internal/pagination"
	"finboard/internal/testutil"
)

func TestListNews(t *testing.T) {
	t.Run("empty_database_serves_fixtures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		page, err := svc.ListNews("", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 8 {
			t.Errorf("expected 8 fixture items, got %d", page.TotalItems)
		}
		if len(page.Data) != 8 {
			t.Errorf("expected 8 items on the first page, got %d", len(page.Data))
		}
	})

	t.Run("fixture_category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		page, err := svc.ListNews("Crypto", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 crypto items, got %d", page.TotalItems)
		}
		for _, item := range page.Data {
			if item.Category != "Crypto" {
				t.Errorf("unexpected category %s", item.Category)
			}
		}
	})

	t.Run("all_means_no_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		page, err := svc.ListNews("all", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 8 {
			t.Errorf("expected all 8 items, got %d", page.TotalItems)
		}
	})

	t.Run("fixture_pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		page, err := svc.ListNews("", pagination.PageRequest{Page: 2, PageSize: 3})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 8 {
			t.Errorf("expected 8 total, got %d", page.TotalItems)
		}
		if len(page.Data) != 3 {
			t.Errorf("expected 3 items on page 2, got %d", len(page.Data))
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", page.TotalPages)
		}
	})

	t.Run("stored_news_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		now := time.Now()
		testutil.CreateTestNewsItem(t, db, "Macro", now.Add(-2*time.Hour))
		newest := testutil.CreateTestNewsItem(t, db, "Crypto", now)
		testutil.CreateTestNewsItem(t, db, "Macro", now.Add(-time.Hour))

		page, err := svc.ListNews("", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Fatalf("expected 3 items, got %d", page.TotalItems)
		}
		if page.Data[0].ID != newest.ID {
			t.Errorf("expected newest item first, got %s", page.Data[0].Title)
		}
	})

	t.Run("stored_news_category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		now := time.Now()
		testutil.CreateTestNewsItem(t, db, "Macro", now)
		testutil.CreateTestNewsItem(t, db, "Crypto", now)

		page, err := svc.ListNews("Macro", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 macro item, got %d", page.TotalItems)
		}
	})

	t.Run("filtered_miss_falls_back_to_fixtures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNewsService(db)

		// No stored rows in this category and none overall: fixture path.
		page, err := svc.ListNews("Real Estate", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 fixture item for Real Estate, got %d", page.TotalItems)
		}
	})
}
