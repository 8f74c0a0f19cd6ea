package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nyumbasure/backend/internal/config"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"go.uber.org/zap"
)

type EscrowService struct {
	escrowRepo   *repositories.EscrowRepo
	listingRepo  *repositories.ListingRepo
	activityRepo *repositories.ActivityRepo
	cfg          *config.Config
	log          *zap.Logger
}

func NewEscrowService(
	escrowRepo *repositories.EscrowRepo,
	listingRepo *repositories.ListingRepo,
	activityRepo *repositories.ActivityRepo,
	cfg *config.Config,
	log *zap.Logger,
) *EscrowService {
	return &EscrowService{
		escrowRepo:   escrowRepo,
		listingRepo:  listingRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
		log:          log,
	}
}

// Initiate records an intended payment against an approved listing. No money
// moves: the record is a time-boxed audit stub with a unique transaction id.
// Concurrent initiations for the same listing are not deduplicated.
func (s *EscrowService) Initiate(ctx context.Context, buyerUserID uuid.UUID, listingID uuid.UUID, amount float64, payer models.PayerInfo) (*models.Escrow, error) {
	if amount <= 0 || payer.Email == "" {
		return nil, fmt.Errorf("%w: listing ID, amount, and payer information are required", ErrValidation)
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: listing not found or not approved", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusApproved {
		return nil, fmt.Errorf("%w: listing not found or not approved", ErrNotFound)
	}

	now := time.Now()
	escrow := &models.Escrow{
		ListingID:     listing.ID,
		Amount:        amount,
		Payer:         payer,
		PayeeAgentID:  listing.AgentID,
		Status:        models.EscrowStatusInitiated,
		TransactionID: models.NewTransactionID(now),
		ExpiresAt:     now.Add(s.cfg.EscrowTTL),
	}

	if err := s.escrowRepo.Create(ctx, escrow); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Log(ctx, models.ActivityEntry{
		Type:        models.ActivityEscrowInitiated,
		ActorUserID: &buyerUserID,
		ListingID:   &listing.ID,
		EscrowID:    &escrow.ID,
		Detail:      fmt.Sprintf("Escrow initiated for KES %.2f", amount),
	}); err != nil {
		s.log.Warn("activity log append failed", zap.String("type", models.ActivityEscrowInitiated), zap.Error(err))
	}

	return escrow, nil
}

// PaymentURL returns the simulated payment page for an escrow record.
func PaymentURL(escrowID uuid.UUID) string {
	return fmt.Sprintf("/nyumba/escrow/%s", escrowID)
}
