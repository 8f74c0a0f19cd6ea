package services

import (
	"strings"
	"testing"

	"github.com/nyumbasure/backend/internal/models"
)

func TestMissingListingFields(t *testing.T) {
	valid := func() *models.Listing {
		return &models.Listing{
			Title:       "Modern 2BR Apartment in Kilimani",
			Description: "Fully furnished with city views",
			Price:       45000,
			Location:    models.Location{City: "Nairobi", Area: "Kilimani"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Listing)
		missing []string
	}{
		{"complete", func(l *models.Listing) {}, nil},
		{"no title", func(l *models.Listing) { l.Title = "" }, []string{"title"}},
		{"no description", func(l *models.Listing) { l.Description = "" }, []string{"description"}},
		{"zero price", func(l *models.Listing) { l.Price = 0 }, []string{"price"}},
		{"negative price", func(l *models.Listing) { l.Price = -1 }, []string{"price"}},
		{"no city", func(l *models.Listing) { l.Location.City = "" }, []string{"location"}},
		{"everything missing", func(l *models.Listing) { *l = models.Listing{} }, []string{"title", "description", "price", "location"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(l)
			got := missingListingFields(l)
			if strings.Join(got, ",") != strings.Join(tt.missing, ",") {
				t.Errorf("missingListingFields() = %v, want %v", got, tt.missing)
			}
		})
	}
}
