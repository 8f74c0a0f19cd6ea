package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nyumbasure/backend/internal/http/dto"
	"github.com/nyumbasure/backend/internal/middleware"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/services"
	"go.uber.org/zap"
)

type AgentHandler struct {
	agentService *services.AgentService
	log          *zap.Logger
}

func NewAgentHandler(agentService *services.AgentService, log *zap.Logger) *AgentHandler {
	return &AgentHandler{agentService: agentService, log: log}
}

func (h *AgentHandler) Pending(c *fiber.Ctx) error {
	agents, err := h.agentService.ListPending(c.Context())
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch pending agents")
	}
	if agents == nil {
		agents = []models.AgentWithUser{}
	}
	return c.JSON(dto.AgentsResponse{Success: true, Agents: agents})
}

func (h *AgentHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Agent not found"})
	}

	if err := h.agentService.Approve(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, h.log, err, "Failed to approve agent")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Agent approved successfully"})
}

func (h *AgentHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Agent not found"})
	}

	var req dto.RejectAgentRequest
	_ = c.BodyParser(&req) // reason is optional, an empty body is fine

	if err := h.agentService.Reject(c.Context(), middleware.GetUserID(c), id, req.Reason); err != nil {
		return fail(c, h.log, err, "Failed to reject agent")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Agent rejected successfully"})
}
