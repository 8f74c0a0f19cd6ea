package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nyumbasure/backend/internal/http/dto"
	"go.uber.org/zap"
)

// A status filter other than approved never reaches the store; the response
// is an empty page that still echoes the caller's paging parameters.
func TestListNonApprovedStatusReturnsEmptyPage(t *testing.T) {
	h := NewListingHandler(nil, zap.NewNop())
	app := fiber.New()
	app.Get("/listings", h.List)

	tests := []struct {
		name  string
		url   string
		page  int
		limit int
	}{
		{"default paging", "/listings?status=pending", 1, 12},
		{"requested paging echoed", "/listings?status=rejected&page=3&limit=30", 3, 30},
		{"out-of-range limit falls back", "/listings?status=pending&limit=500", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
			}

			var body dto.ListingsResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !body.Success {
				t.Error("Success = false, want true")
			}
			if len(body.Listings) != 0 {
				t.Errorf("Listings has %d entries, want 0", len(body.Listings))
			}
			if body.Pagination.Page != tt.page || body.Pagination.Limit != tt.limit {
				t.Errorf("Pagination = page %d limit %d, want page %d limit %d",
					body.Pagination.Page, body.Pagination.Limit, tt.page, tt.limit)
			}
			if body.Pagination.Total != 0 || body.Pagination.Pages != 0 {
				t.Errorf("Pagination totals = total %d pages %d, want 0/0",
					body.Pagination.Total, body.Pagination.Pages)
			}
		})
	}
}
