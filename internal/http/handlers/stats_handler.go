package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/middleware"
	"github.com/nyumbasure/backend/internal/services"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService *services.StatsService
	log          *zap.Logger
}

func NewStatsHandler(statsService *services.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, log: log}
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.statsService.Dashboard(c.Context(),
		middleware.GetUserID(c), middleware.GetUserRole(c), middleware.GetUserEmail(c))
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch statistics")
	}

	return c.JSON(dto.StatsResponse{Success: true, Stats: stats})
}
