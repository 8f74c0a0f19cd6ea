package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nyumbasure/backend/internal/models"
	"github.com/nyumbasure/backend/internal/repositories"
	"go.uber.org/zap"
)

type ListingService struct {
	listingRepo  *repositories.ListingRepo
	agentRepo    *repositories.AgentRepo
	reportRepo   *repositories.ReportRepo
	activityRepo *repositories.ActivityRepo
	log          *zap.Logger
}

func NewListingService(
	listingRepo *repositories.ListingRepo,
	agentRepo *repositories.AgentRepo,
	reportRepo *repositories.ReportRepo,
	activityRepo *repositories.ActivityRepo,
	log *zap.Logger,
) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		agentRepo:    agentRepo,
		reportRepo:   reportRepo,
		activityRepo: activityRepo,
		log:          log,
	}
}

// List returns one page of listings with their owning agents plus the total
// match count. Results are ordered created_at DESC with featured as the
// tie-break, the order the search index is built for.
func (s *ListingService) List(ctx context.Context, f repositories.ListingFilter) ([]models.ListingWithAgent, int, error) {
	if f.Status == "" {
		f.Status = models.ListingStatusApproved
	}
	return s.listingRepo.Search(ctx, f)
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*models.ListingWithAgent, error) {
	lw, err := s.listingRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: listing", ErrNotFound)
	}
	return lw, err
}

// missingListingFields reports which required fields a new listing lacks.
func missingListingFields(l *models.Listing) []string {
	var missing []string
	if l.Title == "" {
		missing = append(missing, "title")
	}
	if l.Description == "" {
		missing = append(missing, "description")
	}
	if l.Price <= 0 {
		missing = append(missing, "price")
	}
	if l.Location.City == "" {
		missing = append(missing, "location")
	}
	return missing
}

// Create inserts a new listing owned by the caller's agent record. Whatever
// the payload claimed about status or ownership is overridden here: every
// new listing starts pending and belongs to the authenticated agent.
func (s *ListingService) Create(ctx context.Context, callerUserID uuid.UUID, l *models.Listing) error {
	if missing := missingListingFields(l); len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	agent, err := s.agentRepo.GetByUserID(ctx, callerUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: no agent profile for caller", ErrForbidden)
	}
	if err != nil {
		return err
	}

	l.AgentID = agent.ID
	l.Status = models.ListingStatusPending
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Amenities == nil {
		l.Amenities = []string{}
	}

	if err := s.listingRepo.Create(ctx, l); err != nil {
		return err
	}

	s.logActivity(ctx, models.ActivityEntry{
		Type:        models.ActivityListingCreated,
		ActorUserID: &callerUserID,
		ListingID:   &l.ID,
		Detail:      fmt.Sprintf("New listing created: %s", l.Title),
	})
	return nil
}

func (s *ListingService) Update(ctx context.Context, callerUserID uuid.UUID, id uuid.UUID, upd repositories.ListingUpdate) error {
	existing, err := s.ownedListing(ctx, callerUserID, id)
	if err != nil {
		return err
	}

	if err := s.listingRepo.UpdateContent(ctx, existing.ID, upd); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: listing", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *ListingService) Delete(ctx context.Context, callerUserID uuid.UUID, id uuid.UUID) error {
	existing, err := s.ownedListing(ctx, callerUserID, id)
	if err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: listing", ErrNotFound)
		}
		return err
	}

	s.logActivity(ctx, models.ActivityEntry{
		Type:        models.ActivityListingDeleted,
		ActorUserID: &callerUserID,
		ListingID:   &existing.ID,
		Detail:      fmt.Sprintf("Listing deleted: %s", existing.Title),
	})
	return nil
}

// Report files a complaint against a listing. Public, no auth.
func (s *ListingService) Report(ctx context.Context, id uuid.UUID, reporterEmail, message string) error {
	if reporterEmail == "" || message == "" {
		return fmt.Errorf("%w: reporter email and message are required", ErrValidation)
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	rep := &models.Report{
		ListingID:     id,
		ReporterEmail: reporterEmail,
		Message:       message,
		Resolved:      false,
	}
	return s.reportRepo.Create(ctx, rep)
}

func (s *ListingService) ListPending(ctx context.Context) ([]models.ListingWithAgent, error) {
	return s.listingRepo.ListPending(ctx)
}

// Moderate moves a listing to a new moderation status, enforcing the
// transition table. Admin-gated at the router.
func (s *ListingService) Moderate(ctx context.Context, adminUserID uuid.UUID, id uuid.UUID, newStatus string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !models.IsValidListingTransition(existing.Status, newStatus) {
		return fmt.Errorf("%w: invalid transition from %s to %s", ErrValidation, existing.Status, newStatus)
	}

	if err := s.listingRepo.UpdateStatus(ctx, existing.ID, existing.Status, newStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: listing", ErrNotFound)
		}
		return err
	}

	activityType := models.ActivityListingApproved
	if newStatus == models.ListingStatusRejected {
		activityType = models.ActivityListingRejected
	}
	s.logActivity(ctx, models.ActivityEntry{
		Type:        activityType,
		ActorUserID: &adminUserID,
		ListingID:   &existing.ID,
		Detail:      fmt.Sprintf("Listing %s by admin", newStatus),
	})
	return nil
}

// ownedListing fetches a listing and verifies the caller's agent profile
// owns it.
func (s *ListingService) ownedListing(ctx context.Context, callerUserID uuid.UUID, id uuid.UUID) (*models.ListingWithAgent, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Agent == nil || existing.Agent.UserID != callerUserID {
		return nil, fmt.Errorf("%w: not the owning agent", ErrForbidden)
	}
	return existing, nil
}

// logActivity appends to the audit trail. The trail is an advisory side
// channel: a failed append never rolls back the primary write.
func (s *ListingService) logActivity(ctx context.Context, entry models.ActivityEntry) {
	if err := s.activityRepo.Log(ctx, entry); err != nil {
		s.log.Warn("activity log append failed", zap.String("type", entry.Type), zap.Error(err))
	}
}
