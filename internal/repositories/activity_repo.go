package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyumbasure/backend/internal/models"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

func (r *ActivityRepo) Log(ctx context.Context, entry models.ActivityEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_log (type, actor_user_id, listing_id, agent_id, escrow_id, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.Type, entry.ActorUserID, entry.ListingID, entry.AgentID, entry.EscrowID, entry.Detail)
	return err
}
