package dto

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		pages int
	}{
		{"exact fit", 1, 10, 100, 10},
		{"partial last page", 1, 12, 25, 3},
		{"single item", 1, 12, 1, 1},
		{"empty", 1, 12, 0, 0},
		{"limit one", 3, 1, 7, 7},
		{"total below limit", 1, 50, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.Pages != tt.pages {
				t.Errorf("Pages = %d, want %d", p.Pages, tt.pages)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}

func TestNewPaginationClampsInvalidInput(t *testing.T) {
	p := NewPagination(0, 0, 10)
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.Limit != 1 {
		t.Errorf("Limit = %d, want 1", p.Limit)
	}
	if p.Pages != 10 {
		t.Errorf("Pages = %d, want 10", p.Pages)
	}
}
