package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const statsCacheKey = "stats:global"

type DashboardStats struct {
	TotalListings   int `json:"totalListings"`
	ActiveListings  int `json:"activeListings"`
	PendingListings int `json:"pendingListings"`
	TotalAgents     int `json:"totalAgents"`
	PendingAgents   int `json:"pendingAgents"`
	UserListings    int `json:"userListings"`
	UserEscrows     int `json:"userEscrows"`
}

type StatsService struct {
	listingRepo *repositories.ListingRepo
	agentRepo   *repositories.AgentRepo
	escrowRepo  *repositories.EscrowRepo
	rdb         *redis.Client
	cfg         *config.Config
	log         *zap.Logger
}

func NewStatsService(
	listingRepo *repositories.ListingRepo,
	agentRepo *repositories.AgentRepo,
	escrowRepo *repositories.EscrowRepo,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) *StatsService {
	return &StatsService{
		listingRepo: listingRepo,
		agentRepo:   agentRepo,
		escrowRepo:  escrowRepo,
		rdb:         rdb,
		cfg:         cfg,
		log:         log,
	}
}

// Dashboard returns global marketplace counts plus, for agent callers, their
// own listing and escrow-as-payer counts. Global counts are served from a
// short-lived redis cache; cache failures fall through to the store.
func (s *StatsService) Dashboard(ctx context.Context, callerUserID uuid.UUID, role, email string) (*DashboardStats, error) {
	stats, err := s.globalStats(ctx)
	if err != nil {
		return nil, err
	}

	if role == models.RoleAgent {
		agent, err := s.agentRepo.GetByUserID(ctx, callerUserID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if agent != nil {
			if stats.UserListings, err = s.listingRepo.CountByAgent(ctx, agent.ID); err != nil {
				return nil, err
			}
		}
		if stats.UserEscrows, err = s.escrowRepo.CountByPayerEmail(ctx, email); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *StatsService) globalStats(ctx context.Context) (*DashboardStats, error) {
	if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
		var stats DashboardStats
		if json.Unmarshal(cached, &stats) == nil {
			return &stats, nil
		}
	}

	var stats DashboardStats
	var err error
	if stats.TotalListings, err = s.listingRepo.CountByStatus(ctx, models.ListingStatusApproved); err != nil {
		return nil, err
	}
	if stats.ActiveListings, err = s.listingRepo.CountApprovedSince(ctx, time.Now().Add(-s.cfg.ActiveListingWindow)); err != nil {
		return nil, err
	}
	if stats.PendingListings, err = s.listingRepo.CountByStatus(ctx, models.ListingStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalAgents, err = s.agentRepo.CountByStatus(ctx, models.AgentStatusApproved); err != nil {
		return nil, err
	}
	if stats.PendingAgents, err = s.agentRepo.CountByStatus(ctx, models.AgentStatusPending); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, statsCacheKey, payload, s.cfg.StatsCacheTTL).Err(); err != nil {
			s.log.Debug("stats cache write failed", zap.Error(err))
		}
	}
	return &stats, nil
}
