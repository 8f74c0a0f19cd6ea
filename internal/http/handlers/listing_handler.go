package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/middleware"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"github.com/nyumbasure/backend/internal/services"
	"go.uber.org/zap"
)

type ListingHandler struct {
	listingService *services.ListingService
	log            *zap.Logger
}

func NewListingHandler(listingService *services.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{listingService: listingService, log: log}
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	filter := repositories.ListingFilter{
		Location: c.Query("location"),
		Status:   models.ListingStatusApproved,
		Page:     1,
		Limit:    12,
	}

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			filter.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			filter.Limit = n
		}
	}

	// The public search only ever serves approved listings; pending and
	// rejected ones stay invisible no matter what the status param says.
	// Moderation views live under /admin.
	if v := c.Query("status"); v != "" && v != models.ListingStatusApproved {
		return c.JSON(dto.ListingsResponse{
			Success:    true,
			Listings:   []models.ListingWithAgent{},
			Pagination: dto.NewPagination(filter.Page, filter.Limit, 0),
		})
	}

	if v := c.Query("min"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &n
		}
	}
	if v := c.Query("max"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &n
		}
	}
	if v := c.Query("type"); v != "" {
		filter.PropertyType = &v
	}

	listings, total, err := h.listingService.List(c.Context(), filter)
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch listings")
	}
	if listings == nil {
		listings = []models.ListingWithAgent{}
	}

	return c.JSON(dto.ListingsResponse{
		Success:    true,
		Listings:   listings,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	})
}

func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found"})
	}

	listing, err := h.listingService.Get(c.Context(), id)
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch listing")
	}

	return c.JSON(dto.ListingResponse{Success: true, Listing: listing})
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	listing := &models.Listing{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Deposit:        req.Deposit,
		ServiceCharge:  req.ServiceCharge,
		EstUtilities:   req.EstUtilities,
		PropertyType:   req.PropertyType,
		Furnished:      req.Furnished,
		Location:       req.Location,
		Images:         req.Images,
		VideoURL:       req.VideoURL,
		Featured:       req.Featured,
		VerifiedPhotos: req.VerifiedPhotos,
		Amenities:      req.Amenities,
	}

	if err := h.listingService.Create(c.Context(), middleware.GetUserID(c), listing); err != nil {
		return fail(c, h.log, err, "Failed to create listing")
	}

	return c.JSON(dto.CreateListingResponse{
		Success:   true,
		ListingID: listing.ID,
		Message:   "Listing submitted for approval",
	})
}

func (h *ListingHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found"})
	}

	var req dto.UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	upd := repositories.ListingUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Deposit:        req.Deposit,
		ServiceCharge:  req.ServiceCharge,
		EstUtilities:   req.EstUtilities,
		PropertyType:   req.PropertyType,
		Furnished:      req.Furnished,
		Location:       req.Location,
		Images:         req.Images,
		VideoURL:       req.VideoURL,
		Featured:       req.Featured,
		VerifiedPhotos: req.VerifiedPhotos,
		Amenities:      req.Amenities,
	}

	if err := h.listingService.Update(c.Context(), middleware.GetUserID(c), id, upd); err != nil {
		return fail(c, h.log, err, "Failed to update listing")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Listing updated successfully"})
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found"})
	}

	if err := h.listingService.Delete(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, h.log, err, "Failed to delete listing")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Listing deleted successfully"})
}

func (h *ListingHandler) Report(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found"})
	}

	var req dto.ReportListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	if err := h.listingService.Report(c.Context(), id, req.ReporterEmail, req.Message); err != nil {
		return fail(c, h.log, err, "Failed to submit report")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Report submitted successfully"})
}

// Admin moderation endpoints.

func (h *ListingHandler) ListPending(c *fiber.Ctx) error {
	listings, err := h.listingService.ListPending(c.Context())
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch pending listings")
	}
	if listings == nil {
		listings = []models.ListingWithAgent{}
	}
	return c.JSON(dto.PendingListingsResponse{Success: true, Listings: listings})
}

func (h *ListingHandler) Approve(c *fiber.Ctx) error {
	return h.moderate(c, models.ListingStatusApproved, "Listing approved successfully")
}

func (h *ListingHandler) Reject(c *fiber.Ctx) error {
	return h.moderate(c, models.ListingStatusRejected, "Listing rejected successfully")
}

func (h *ListingHandler) moderate(c *fiber.Ctx, newStatus, message string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Listing not found"})
	}

	if err := h.listingService.Moderate(c.Context(), middleware.GetUserID(c), id, newStatus); err != nil {
		return fail(c, h.log, err, "Failed to moderate listing")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}
