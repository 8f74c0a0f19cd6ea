package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyumbasure/backend/internal/models"
)

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

func (r *ReportRepo) Create(ctx context.Context, rep *models.Report) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO reports (listing_id, reporter_email, message, resolved)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rep.ListingID, rep.ReporterEmail, rep.Message, rep.Resolved).Scan(&rep.ID, &rep.CreatedAt)
}
