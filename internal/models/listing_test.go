package models

import "testing"

func TestIsValidListingTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Moderation decisions
		{ListingStatusPending, ListingStatusApproved, true},
		{ListingStatusPending, ListingStatusRejected, true},

		// Reversible decisions
		{ListingStatusApproved, ListingStatusRejected, true},
		{ListingStatusRejected, ListingStatusApproved, true},

		// Nothing re-enters pending
		{ListingStatusApproved, ListingStatusPending, false},
		{ListingStatusRejected, ListingStatusPending, false},

		// No self transitions
		{ListingStatusPending, ListingStatusPending, false},
		{ListingStatusApproved, ListingStatusApproved, false},

		// Unknown statuses
		{"nonexistent", ListingStatusApproved, false},
		{ListingStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidListingTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidListingTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllListingStatusesHaveTransitionEntry(t *testing.T) {
	for _, status := range []string{ListingStatusPending, ListingStatusApproved, ListingStatusRejected} {
		if _, ok := ValidListingTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidListingTransitions map", status)
		}
	}
}
