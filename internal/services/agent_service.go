package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"go.uber.org/zap"
)

// DefaultRejectionReason is stored when an admin rejects an agent without
// giving one.
const DefaultRejectionReason = "Not specified"

type AgentService struct {
	agentRepo    *repositories.AgentRepo
	activityRepo *repositories.ActivityRepo
	log          *zap.Logger
}

func NewAgentService(agentRepo *repositories.AgentRepo, activityRepo *repositories.ActivityRepo, log *zap.Logger) *AgentService {
	return &AgentService{agentRepo: agentRepo, activityRepo: activityRepo, log: log}
}

func (s *AgentService) ListPending(ctx context.Context) ([]models.AgentWithUser, error) {
	return s.agentRepo.ListPendingWithUsers(ctx)
}

func (s *AgentService) Approve(ctx context.Context, adminUserID uuid.UUID, id uuid.UUID) error {
	return s.decide(ctx, adminUserID, id, models.AgentStatusApproved, nil)
}

func (s *AgentService) Reject(ctx context.Context, adminUserID uuid.UUID, id uuid.UUID, reason string) error {
	reason = rejectionReasonOrDefault(reason)
	return s.decide(ctx, adminUserID, id, models.AgentStatusRejected, &reason)
}

func rejectionReasonOrDefault(reason string) string {
	if reason == "" {
		return DefaultRejectionReason
	}
	return reason
}

func (s *AgentService) decide(ctx context.Context, adminUserID uuid.UUID, id uuid.UUID, newStatus string, reason *string) error {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: agent", ErrNotFound)
	}
	if err != nil {
		return err
	}

	if !models.IsValidAgentTransition(agent.Status, newStatus) {
		return fmt.Errorf("%w: invalid transition from %s to %s", ErrValidation, agent.Status, newStatus)
	}

	if err := s.agentRepo.UpdateStatus(ctx, agent.ID, agent.Status, newStatus, reason); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: agent", ErrNotFound)
		}
		return err
	}

	activityType := models.ActivityAgentApproved
	detail := "Agent approved by admin"
	if newStatus == models.AgentStatusRejected {
		activityType = models.ActivityAgentRejected
		detail = fmt.Sprintf("Agent rejected by admin: %s", *reason)
	}
	if err := s.activityRepo.Log(ctx, models.ActivityEntry{
		Type:        activityType,
		ActorUserID: &adminUserID,
		AgentID:     &agent.ID,
		Detail:      detail,
	}); err != nil {
		s.log.Warn("activity log append failed", zap.String("type", activityType), zap.Error(err))
	}
	return nil
}
