package postgres

import (
	"context"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepo struct{ db *pgxpool.Pool }

func NewAdminRepo(db *pgxpool.Pool) repository.AdminRepository { return &AdminRepo{db: db} }

// Create stores a new admin (bcrypt hash in password_h).
func (r *AdminRepo) Create(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (id, username, password_h)
		VALUES ($1,$2,$3)
		RETURNING id, username, active, created_at`,
		uuid.NewString(), username, passwordHash).
		Scan(&a.ID, &a.Username, &a.Active, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, string, error) {
	var a models.Admin
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, username, active, password_h, created_at
		FROM admins WHERE username=$1`, username).
		Scan(&a.ID, &a.Username, &a.Active, &ph, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", repository.ErrNotFound
		}
		return nil, "", err
	}
	return &a, ph, nil
}

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRow(ctx, `
		SELECT id, username, active, created_at
		FROM admins WHERE id=$1`, id).
		Scan(&a.ID, &a.Username, &a.Active, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, active, created_at
		FROM admins
		ORDER BY username ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdminRepo) SetActive(ctx context.Context, id string, active bool) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRow(ctx, `
		UPDATE admins
		SET active=$1
		WHERE id=$2
		RETURNING id, username, active, created_at
	`, active, id).Scan(&a.ID, &a.Username, &a.Active, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
