package models

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID            uuid.UUID `json:"id"`
	ListingID     uuid.UUID `json:"listingId"`
	ReporterEmail string    `json:"reporterEmail"`
	Message       string    `json:"message"`
	Resolved      bool      `json:"resolved"`
	CreatedAt     time.Time `json:"createdAt"`
}
