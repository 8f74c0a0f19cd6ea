package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyumbasure/backend/internal/models"
)

type AgentRepo struct {
	pool *pgxpool.Pool
}

func NewAgentRepo(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

func (r *AgentRepo) Create(ctx context.Context, a *models.Agent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO agents (user_id, name, phone, email, id_verified, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.UserID, a.Name, a.Phone, a.Email, a.IDVerified, a.Status).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AgentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, phone, email, id_verified, status, rejection_reason, created_at, updated_at
		FROM agents WHERE id = $1
	`, id)
	return scanAgent(row)
}

func (r *AgentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Agent, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, phone, email, id_verified, status, rejection_reason, created_at, updated_at
		FROM agents WHERE user_id = $1
	`, userID)
	return scanAgent(row)
}

func (r *AgentRepo) ListPendingWithUsers(ctx context.Context) ([]models.AgentWithUser, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.name, a.phone, a.email, a.id_verified, a.status,
		       a.rejection_reason, a.created_at, a.updated_at,
		       u.email, u.name
		FROM agents a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = $1
		ORDER BY a.created_at DESC
	`, models.AgentStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []models.AgentWithUser
	for rows.Next() {
		var aw models.AgentWithUser
		if err := rows.Scan(
			&aw.ID, &aw.UserID, &aw.Name, &aw.Phone, &aw.Email, &aw.IDVerified, &aw.Status,
			&aw.RejectionReason, &aw.CreatedAt, &aw.UpdatedAt,
			&aw.UserEmail, &aw.UserName,
		); err != nil {
			return nil, err
		}
		agents = append(agents, aw)
	}
	return agents, rows.Err()
}

// UpdateStatus moves an agent from one status to another, optionally storing
// a rejection reason. The WHERE clause on the old status keeps concurrent
// decisions from racing each other.
func (r *AgentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, rejectionReason *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET status = $1, rejection_reason = $2, updated_at = now()
		WHERE id = $3 AND status = $4
	`, to, rejectionReason, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *AgentRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM agents WHERE status = $1`, status).Scan(&n)
	return n, err
}

func scanAgent(row pgx.Row) (*models.Agent, error) {
	var a models.Agent
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Email, &a.IDVerified, &a.Status,
		&a.RejectionReason, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
