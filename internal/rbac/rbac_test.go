package rbac

import (
	"testing"

	"github.com/nyumbasure/backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{models.RoleAgent, PermCreateListing, true},
		{models.RoleAgent, PermManageOwnListing, true},
		{models.RoleAgent, PermModerateListings, false},
		{models.RoleAgent, PermModerateAgents, false},

		{models.RoleBuyer, PermInitiateEscrow, true},
		{models.RoleBuyer, PermViewStats, true},
		{models.RoleBuyer, PermCreateListing, false},

		{models.RoleAdmin, PermModerateListings, true},
		{models.RoleAdmin, PermModerateAgents, true},
		// Admins moderate, they do not own listings
		{models.RoleAdmin, PermCreateListing, false},

		{"nonexistent", PermViewStats, false},
		{models.RoleAgent, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestEveryRoleHasPermissions(t *testing.T) {
	for _, role := range []string{models.RoleBuyer, models.RoleAgent, models.RoleAdmin} {
		if len(RolePermissions[role]) == 0 {
			t.Errorf("role %q has no permissions", role)
		}
	}
}
