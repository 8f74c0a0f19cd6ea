package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent statuses
const (
	AgentStatusPending  = "pending"
	AgentStatusApproved = "approved"
	AgentStatusRejected = "rejected"
)

// Valid agent state transitions: from -> []to. Approval and rejection are
// one-shot decisions, there is no re-submission flow.
var ValidAgentTransitions = map[string][]string{
	AgentStatusPending:  {AgentStatusApproved, AgentStatusRejected},
	AgentStatusApproved: {},
	AgentStatusRejected: {},
}

func IsValidAgentTransition(from, to string) bool {
	allowed, ok := ValidAgentTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Agent struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	IDVerified      bool      `json:"idVerified"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AgentWithUser embeds Agent and adds the linked user account so the admin
// dashboard does not need a second lookup.
type AgentWithUser struct {
	Agent
	UserEmail *string `json:"userEmail,omitempty"`
	UserName  *string `json:"userName,omitempty"`
}
