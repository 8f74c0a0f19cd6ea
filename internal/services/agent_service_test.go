package services

import "testing"

func TestRejectionReasonOrDefault(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   string
	}{
		{"empty reason", "", DefaultRejectionReason},
		{"explicit reason", "Incomplete ID documents", "Incomplete ID documents"},
		{"whitespace is kept as given", " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rejectionReasonOrDefault(tt.reason); got != tt.want {
				t.Errorf("rejectionReasonOrDefault(%q) = %q, want %q", tt.reason, got, tt.want)
			}
		})
	}
}
