package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/nyumbasure/backend/internal/models"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Pagination mirrors the shape dashboards page with: pages is always
// ceil(total/limit).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}

type ListingsResponse struct {
	Success    bool                      `json:"success"`
	Listings   []models.ListingWithAgent `json:"listings"`
	Pagination Pagination                `json:"pagination"`
}

type ListingResponse struct {
	Success bool                     `json:"success"`
	Listing *models.ListingWithAgent `json:"listing"`
}

type CreateListingResponse struct {
	Success   bool      `json:"success"`
	ListingID uuid.UUID `json:"listingId"`
	Message   string    `json:"message,omitempty"`
}

type AgentsResponse struct {
	Success bool                   `json:"success"`
	Agents  []models.AgentWithUser `json:"agents"`
}

type PendingListingsResponse struct {
	Success  bool                      `json:"success"`
	Listings []models.ListingWithAgent `json:"listings"`
}

type EscrowResponse struct {
	Success       bool      `json:"success"`
	EscrowID      uuid.UUID `json:"escrowId"`
	TransactionID string    `json:"transactionId"`
	PaymentURL    string    `json:"paymentUrl"`
	Message       string    `json:"message,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type StatsResponse struct {
	Success bool `json:"success"`
	Stats   any  `json:"stats"`
}
