package postgres

import (
	"context"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BlockRepo struct{ db *pgxpool.Pool }

func NewBlockRepo(db *pgxpool.Pool) *BlockRepo { return &BlockRepo{db: db} }

// Toggle inserts a new active block or flips an existing one. Single
// statement, so two concurrent toggles for the same email cannot both insert.
func (r *BlockRepo) Toggle(ctx context.Context, email string) (*models.BlockedEmail, error) {
	var b models.BlockedEmail
	err := r.db.QueryRow(ctx, `
		INSERT INTO blocked_emails (email, active)
		VALUES ($1, TRUE)
		ON CONFLICT (email) DO UPDATE SET active = NOT blocked_emails.active
		RETURNING email, active, created_at
	`, email).Scan(&b.Email, &b.Active, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlockRepo) IsBlocked(ctx context.Context, email string) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx,
		`SELECT active FROM blocked_emails WHERE email = $1`, email).Scan(&active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return active, nil
}

func (r *BlockRepo) List(ctx context.Context) ([]models.BlockedEmail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT email, active, created_at FROM blocked_emails ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BlockedEmail
	for rows.Next() {
		var b models.BlockedEmail
		if err := rows.Scan(&b.Email, &b.Active, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
