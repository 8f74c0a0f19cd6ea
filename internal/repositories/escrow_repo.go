package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyumbasure/backend/internal/models"
)

type EscrowRepo struct {
	pool *pgxpool.Pool
}

func NewEscrowRepo(pool *pgxpool.Pool) *EscrowRepo {
	return &EscrowRepo{pool: pool}
}

func (r *EscrowRepo) Create(ctx context.Context, e *models.Escrow) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO escrows (listing_id, amount, payer_name, payer_email, payer_phone,
		                     payee_agent_id, status, transaction_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, e.ListingID, e.Amount, e.Payer.Name, e.Payer.Email, e.Payer.Phone,
		e.PayeeAgentID, e.Status, e.TransactionID, e.ExpiresAt,
	).Scan(&e.ID, &e.CreatedAt)
}

// CountByPayerEmail matches on the payer_email column directly rather than
// comparing a whole payer object.
func (r *EscrowRepo) CountByPayerEmail(ctx context.Context, email string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM escrows WHERE payer_email = $1`, email).Scan(&n)
	return n, err
}
