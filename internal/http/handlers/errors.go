package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/services"
	"go.uber.org/zap"
)

// fail maps a service error onto the response envelope. Domain errors keep
// their message; anything else is an unexpected store failure and surfaces
// as a generic 500 so internals never leak.
func fail(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	default:
		log.Error(fallback, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: fallback})
	}
}
