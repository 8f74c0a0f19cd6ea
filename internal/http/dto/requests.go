package dto

import "github.com/nyumbasure/backend/internal/models"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"` // buyer (default) or agent
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminSetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateListingRequest deliberately has no agentId or status field: ownership
// comes from the session and every new listing starts pending. Unknown JSON
// keys in the body are dropped by the parser.
type CreateListingRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Deposit        float64         `json:"deposit,omitempty"`
	ServiceCharge  float64         `json:"serviceCharge,omitempty"`
	EstUtilities   float64         `json:"estUtilities,omitempty"`
	PropertyType   *string         `json:"propertyType,omitempty"`
	Furnished      bool            `json:"furnished,omitempty"`
	Location       models.Location `json:"location"`
	Images         []string        `json:"images,omitempty"`
	VideoURL       *string         `json:"videoUrl,omitempty"`
	Featured       bool            `json:"featured,omitempty"`
	VerifiedPhotos bool            `json:"verifiedPhotos,omitempty"`
	Amenities      []string        `json:"amenities,omitempty"`
}

type UpdateListingRequest struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *float64         `json:"price,omitempty"`
	Deposit        *float64         `json:"deposit,omitempty"`
	ServiceCharge  *float64         `json:"serviceCharge,omitempty"`
	EstUtilities   *float64         `json:"estUtilities,omitempty"`
	PropertyType   *string          `json:"propertyType,omitempty"`
	Furnished      *bool            `json:"furnished,omitempty"`
	Location       *models.Location `json:"location,omitempty"`
	Images         []string         `json:"images,omitempty"`
	VideoURL       *string          `json:"videoUrl,omitempty"`
	Featured       *bool            `json:"featured,omitempty"`
	VerifiedPhotos *bool            `json:"verifiedPhotos,omitempty"`
	Amenities      []string         `json:"amenities,omitempty"`
}

type ReportListingRequest struct {
	ReporterEmail string `json:"reporterEmail"`
	Message       string `json:"message"`
}

type RejectAgentRequest struct {
	Reason string `json:"reason,omitempty"`
}

type InitiateEscrowRequest struct {
	ListingID string           `json:"listingId"`
	Amount    float64          `json:"amount"`
	PayerInfo models.PayerInfo `json:"payerInfo"`
}
