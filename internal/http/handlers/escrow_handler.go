package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/middleware"
	"github.com/nyumbasure/backend/internal/services"
	"go.uber.org/zap"
)

type EscrowHandler struct {
	escrowService *services.EscrowService
	log           *zap.Logger
}

func NewEscrowHandler(escrowService *services.EscrowService, log *zap.Logger) *EscrowHandler {
	return &EscrowHandler{escrowService: escrowService, log: log}
}

func (h *EscrowHandler) Initiate(c *fiber.Ctx) error {
	var req dto.InitiateEscrowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	if req.ListingID == "" || req.Amount == 0 || req.PayerInfo.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Listing ID, amount, and payer information are required"})
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found or not approved"})
	}

	escrow, err := h.escrowService.Initiate(c.Context(), middleware.GetUserID(c), listingID, req.Amount, req.PayerInfo)
	if err != nil {
		return fail(c, h.log, err, "Failed to initiate escrow")
	}

	return c.JSON(dto.EscrowResponse{
		Success:       true,
		EscrowID:      escrow.ID,
		TransactionID: escrow.TransactionID,
		PaymentURL:    services.PaymentURL(escrow.ID),
		Message:       "Escrow initiated successfully. Complete payment within 24 hours.",
		ExpiresAt:     escrow.ExpiresAt,
	})
}
