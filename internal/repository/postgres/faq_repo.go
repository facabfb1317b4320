package postgres

import (
	"context"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FAQRepo struct{ db *pgxpool.Pool }

func NewFAQRepo(db *pgxpool.Pool) *FAQRepo { return &FAQRepo{db: db} }

const faqCols = `id, question, answer, category, frequency, active, source_query_id, created_at`

func scanFAQ(row pgx.Row, f *models.FAQ) error {
	return row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Frequency, &f.Active, &f.SourceQueryID, &f.CreatedAt)
}

// Upsert is the match-or-create step of FAQ aggregation. The UNIQUE
// constraint on question plus ON CONFLICT makes it a single atomic
// statement, so two concurrent submissions with the same text cannot
// both insert a new row. An existing entry only has its frequency
// bumped; answer and category are left untouched.
func (r *FAQRepo) Upsert(ctx context.Context, question, category string) (*models.FAQ, error) {
	var f models.FAQ
	err := scanFAQ(r.db.QueryRow(ctx, `
		INSERT INTO faqs (id, question, answer, category, frequency, source_query_id)
		VALUES ($1,$2,'',$3,1,'')
		ON CONFLICT (question) DO UPDATE SET frequency = faqs.frequency + 1
		RETURNING `+faqCols+`
	`, uuid.NewString(), question, category), &f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Put is the curated write path: admins hand-writing an entry or promoting a
// query. The same UNIQUE constraint folds it into an already aggregated
// entry, overwriting only the fields that were actually supplied and leaving
// frequency alone.
func (r *FAQRepo) Put(ctx context.Context, question, answer, category, sourceQueryID string) (*models.FAQ, error) {
	var f models.FAQ
	err := scanFAQ(r.db.QueryRow(ctx, `
		INSERT INTO faqs (id, question, answer, category, frequency, source_query_id)
		VALUES ($1,$2,$3,$4,1,$5)
		ON CONFLICT (question) DO UPDATE SET
			answer = CASE WHEN EXCLUDED.answer <> '' THEN EXCLUDED.answer ELSE faqs.answer END,
			category = CASE WHEN EXCLUDED.category <> '' THEN EXCLUDED.category ELSE faqs.category END,
			source_query_id = CASE WHEN EXCLUDED.source_query_id <> '' THEN EXCLUDED.source_query_id ELSE faqs.source_query_id END
		RETURNING `+faqCols+`
	`, uuid.NewString(), question, answer, category, sourceQueryID), &f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepo) Get(ctx context.Context, id string) (*models.FAQ, error) {
	var f models.FAQ
	err := scanFAQ(r.db.QueryRow(ctx,
		`SELECT `+faqCols+` FROM faqs WHERE id = $1`, id), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// List returns FAQ entries ordered by frequency descending, ties broken by
// earliest creation. The public FAQ page passes activeOnly=true; the admin
// management view sees everything.
func (r *FAQRepo) List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error) {
	clauses := "1=1"
	args := []any{}
	if category != "" {
		args = append(args, category)
		clauses += " AND category = $" + itoa(len(args))
	}
	if activeOnly {
		clauses += " AND active"
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+faqCols+`
		FROM faqs
		WHERE `+clauses+`
		ORDER BY frequency DESC, created_at ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := scanFAQ(rows, &f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// SetAnswer updates the curated fields without touching frequency.
// A nil category leaves the stored category as is.
func (r *FAQRepo) SetAnswer(ctx context.Context, id, answer string, category *string) (*models.FAQ, error) {
	var f models.FAQ
	err := scanFAQ(r.db.QueryRow(ctx, `
		UPDATE faqs
		SET answer=$1, category=COALESCE($2, category)
		WHERE id=$3
		RETURNING `+faqCols+`
	`, answer, category, id), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepo) SetActive(ctx context.Context, id string, active bool) (*models.FAQ, error) {
	var f models.FAQ
	err := scanFAQ(r.db.QueryRow(ctx, `
		UPDATE faqs
		SET active=$1
		WHERE id=$2
		RETURNING `+faqCols+`
	`, active, id), &f)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}
