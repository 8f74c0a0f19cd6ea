package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyumbasure/backend/internal/models"
)

type ListingRepo struct {
	pool *pgxpool.Pool
}

func NewListingRepo(pool *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// ListingFilter narrows Search. Location matches city OR area as a
// case-insensitive substring.
type ListingFilter struct {
	Location     string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType *string
	Status       string
	Page         int
	Limit        int
}

// ListingUpdate carries the content fields an owning agent may change.
// Status and agent ownership are deliberately absent: those never move
// through this path.
type ListingUpdate struct {
	Title          *string
	Description    *string
	Price          *float64
	Deposit        *float64
	ServiceCharge  *float64
	EstUtilities   *float64
	PropertyType   *string
	Furnished      *bool
	Location       *models.Location
	Images         []string
	VideoURL       *string
	Featured       *bool
	VerifiedPhotos *bool
	Amenities      []string
}

const listingCols = `
	l.id, l.title, l.description, l.price, l.deposit, l.service_charge, l.est_utilities,
	l.property_type, l.furnished, l.city, l.area, l.lat, l.lng, l.address,
	l.images, l.video_url, l.agent_id, l.status, l.featured,
	l.verified_photos, l.verified_agent, l.amenities, l.created_at, l.updated_at`

const agentCols = `
	a.id, a.user_id, a.name, a.phone, a.email, a.id_verified, a.status,
	a.rejection_reason, a.created_at, a.updated_at`

func (r *ListingRepo) Create(ctx context.Context, l *models.Listing) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO listings (
			title, description, price, deposit, service_charge, est_utilities,
			property_type, furnished, city, area, lat, lng, address,
			images, video_url, agent_id, status, featured,
			verified_photos, verified_agent, amenities
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		          $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at
	`, l.Title, l.Description, l.Price, l.Deposit, l.ServiceCharge, l.EstUtilities,
		l.PropertyType, l.Furnished, l.Location.City, l.Location.Area,
		l.Location.Lat, l.Location.Lng, l.Location.Address,
		l.Images, l.VideoURL, l.AgentID, l.Status, l.Featured,
		l.VerifiedPhotos, l.VerifiedAgent, l.Amenities,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *ListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingWithAgent, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+listingCols+`, `+agentCols+`
		FROM listings l
		JOIN agents a ON a.id = l.agent_id
		WHERE l.id = $1
	`, id)
	return scanListingWithAgent(row)
}

func (r *ListingRepo) Search(ctx context.Context, f ListingFilter) ([]models.ListingWithAgent, int, error) {
	where := " WHERE l.status = $1"
	args := []any{f.Status}
	argIdx := 2

	if f.Location != "" {
		where += fmt.Sprintf(" AND (l.city ILIKE $%d OR l.area ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Location+"%")
		argIdx++
	}
	if f.MinPrice != nil {
		where += fmt.Sprintf(" AND l.price >= $%d", argIdx)
		args = append(args, *f.MinPrice)
		argIdx++
	}
	if f.MaxPrice != nil {
		where += fmt.Sprintf(" AND l.price <= $%d", argIdx)
		args = append(args, *f.MaxPrice)
		argIdx++
	}
	if f.PropertyType != nil {
		where += fmt.Sprintf(" AND l.property_type = $%d", argIdx)
		args = append(args, *f.PropertyType)
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM listings l"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	query := `
		SELECT ` + listingCols + `, ` + agentCols + `
		FROM listings l
		JOIN agents a ON a.id = l.agent_id` + where +
		fmt.Sprintf(" ORDER BY l.created_at DESC, l.featured DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var listings []models.ListingWithAgent
	for rows.Next() {
		lw, err := scanListingWithAgent(rows)
		if err != nil {
			return nil, 0, err
		}
		listings = append(listings, *lw)
	}
	return listings, total, rows.Err()
}

func (r *ListingRepo) UpdateContent(ctx context.Context, id uuid.UUID, upd ListingUpdate) error {
	set := "updated_at = now()"
	args := []any{}
	argIdx := 1

	add := func(col string, val any) {
		set += fmt.Sprintf(", %s = $%d", col, argIdx)
		args = append(args, val)
		argIdx++
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Deposit != nil {
		add("deposit", *upd.Deposit)
	}
	if upd.ServiceCharge != nil {
		add("service_charge", *upd.ServiceCharge)
	}
	if upd.EstUtilities != nil {
		add("est_utilities", *upd.EstUtilities)
	}
	if upd.PropertyType != nil {
		add("property_type", *upd.PropertyType)
	}
	if upd.Furnished != nil {
		add("furnished", *upd.Furnished)
	}
	if upd.Location != nil {
		add("city", upd.Location.City)
		add("area", upd.Location.Area)
		add("lat", upd.Location.Lat)
		add("lng", upd.Location.Lng)
		add("address", upd.Location.Address)
	}
	if upd.Images != nil {
		add("images", upd.Images)
	}
	if upd.VideoURL != nil {
		add("video_url", *upd.VideoURL)
	}
	if upd.Featured != nil {
		add("featured", *upd.Featured)
	}
	if upd.VerifiedPhotos != nil {
		add("verified_photos", *upd.VerifiedPhotos)
	}
	if upd.Amenities != nil {
		add("amenities", upd.Amenities)
	}

	query := fmt.Sprintf("UPDATE listings SET %s WHERE id = $%d", set, argIdx)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus moves a listing from one status to another. The WHERE clause
// on the old status makes the transition atomic against concurrent
// moderation of the same listing.
func (r *ListingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE listings SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ListingRepo) ListPending(ctx context.Context) ([]models.ListingWithAgent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingCols+`, `+agentCols+`
		FROM listings l
		JOIN agents a ON a.id = l.agent_id
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`, models.ListingStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.ListingWithAgent
	for rows.Next() {
		lw, err := scanListingWithAgent(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *lw)
	}
	return listings, rows.Err()
}

func (r *ListingRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM listings WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (r *ListingRepo) CountApprovedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM listings WHERE status = $1 AND created_at >= $2
	`, models.ListingStatusApproved, since).Scan(&n)
	return n, err
}

func (r *ListingRepo) CountByAgent(ctx context.Context, agentID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM listings WHERE agent_id = $1`, agentID).Scan(&n)
	return n, err
}

func scanListingWithAgent(row pgx.Row) (*models.ListingWithAgent, error) {
	var lw models.ListingWithAgent
	var ag models.Agent
	err := row.Scan(
		&lw.ID, &lw.Title, &lw.Description, &lw.Price, &lw.Deposit, &lw.ServiceCharge, &lw.EstUtilities,
		&lw.PropertyType, &lw.Furnished, &lw.Location.City, &lw.Location.Area,
		&lw.Location.Lat, &lw.Location.Lng, &lw.Location.Address,
		&lw.Images, &lw.VideoURL, &lw.AgentID, &lw.Status, &lw.Featured,
		&lw.VerifiedPhotos, &lw.VerifiedAgent, &lw.Amenities, &lw.CreatedAt, &lw.UpdatedAt,
		&ag.ID, &ag.UserID, &ag.Name, &ag.Phone, &ag.Email, &ag.IDVerified, &ag.Status,
		&ag.RejectionReason, &ag.CreatedAt, &ag.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lw.Agent = &ag
	return &lw, nil
}
