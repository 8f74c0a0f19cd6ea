package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing statuses
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

// Valid listing state transitions: from -> []to. Moderation decisions are
// reversible (an approved listing can be taken down, a rejected one can be
// approved after resubmission of fixes), but nothing skips the pending gate
// on creation.
var ValidListingTransitions = map[string][]string{
	ListingStatusPending:  {ListingStatusApproved, ListingStatusRejected},
	ListingStatusApproved: {ListingStatusRejected},
	ListingStatusRejected: {ListingStatusApproved},
}

func IsValidListingTransition(from, to string) bool {
	allowed, ok := ValidListingTransitions[from]
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

type Location struct {
	City    string   `json:"city"`
	Area    string   `json:"area,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address,omitempty"`
}

type Listing struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Deposit        float64   `json:"deposit"`
	ServiceCharge  float64   `json:"serviceCharge"`
	EstUtilities   float64   `json:"estUtilities"`
	PropertyType   *string   `json:"propertyType,omitempty"`
	Furnished      bool      `json:"furnished"`
	Location       Location  `json:"location"`
	Images         []string  `json:"images"`
	VideoURL       *string   `json:"videoUrl,omitempty"`
	AgentID        uuid.UUID `json:"agentId"`
	Status         string    `json:"status"`
	Featured       bool      `json:"featured"`
	VerifiedPhotos bool      `json:"verifiedPhotos"`
	VerifiedAgent  bool      `json:"verifiedAgent"`
	Amenities      []string  `json:"amenities"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ListingWithAgent embeds Listing and adds the owning agent's public record,
// joined in one query to avoid N+1 lookups.
type ListingWithAgent struct {
	Listing
	Agent *Agent `json:"agent,omitempty"`
}
