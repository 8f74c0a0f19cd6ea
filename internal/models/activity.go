package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types
const (
	ActivityListingCreated  = "listing_created"
	ActivityListingDeleted  = "listing_deleted"
	ActivityListingApproved = "listing_approved"
	ActivityListingRejected = "listing_rejected"
	ActivityAgentApproved   = "agent_approved"
	ActivityAgentRejected   = "agent_rejected"
	ActivityEscrowInitiated = "escrow_initiated"
)

// ActivityEntry is an append-only audit record. Nothing in the API reads it
// back; writes that fail are logged and swallowed by the services.
type ActivityEntry struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	ListingID   *uuid.UUID `json:"listingId,omitempty"`
	AgentID     *uuid.UUID `json:"agentId,omitempty"`
	EscrowID    *uuid.UUID `json:"escrowId,omitempty"`
	Detail      string     `json:"detail,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
