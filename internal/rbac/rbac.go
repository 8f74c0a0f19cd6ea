package rbac

import "github.com/nyumbasure/backend/internal/models"

// Permission constants
const (
	PermCreateListing    = "create_listing"
	PermManageOwnListing = "manage_own_listing"
	PermModerateListings = "moderate_listings"
	PermModerateAgents   = "moderate_agents"
	PermInitiateEscrow   = "initiate_escrow"
	PermViewStats        = "view_stats"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	models.RoleBuyer: {
		PermInitiateEscrow, PermViewStats,
	},
	models.RoleAgent: {
		PermCreateListing, PermManageOwnListing, PermInitiateEscrow, PermViewStats,
	},
	models.RoleAdmin: {
		PermModerateListings, PermModerateAgents, PermInitiateEscrow, PermViewStats,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
