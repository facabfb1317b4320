package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QueryRepo struct{ db *pgxpool.Pool }

func NewQueryRepo(db *pgxpool.Pool) *QueryRepo { return &QueryRepo{db: db} }

const queryCols = `id, requester_name, requester_email, COALESCE(requester_id, ''),
	category, message, status, admin_response, created_at, resolved_at`

func scanQuery(row pgx.Row, q *models.Query) error {
	return row.Scan(
		&q.ID, &q.RequesterName, &q.RequesterEmail, &q.RequesterID,
		&q.Category, &q.Message, &q.Status, &q.AdminResponse,
		&q.CreatedAt, &q.ResolvedAt,
	)
}

// Create persists a new query. The store assigns id and created_at and
// forces the initial pending status regardless of what the caller set.
func (r *QueryRepo) Create(ctx context.Context, q *models.Query) error {
	q.ID = uuid.NewString()
	q.Status = models.StatusPending
	q.ResolvedAt = nil
	return r.db.QueryRow(ctx, `
		INSERT INTO queries (id, requester_name, requester_email, requester_id, category, message, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`,
		q.ID, q.RequesterName, q.RequesterEmail, nullIfEmpty(q.RequesterID),
		q.Category, q.Message, q.Status,
	).Scan(&q.CreatedAt)
}

func (r *QueryRepo) Get(ctx context.Context, id string) (*models.Query, error) {
	var q models.Query
	err := scanQuery(r.db.QueryRow(ctx,
		`SELECT `+queryCols+` FROM queries WHERE id = $1`, id), &q)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// List returns a filtered, paginated page plus the total count for the same
// filter (needed by the pagination UI).
func (r *QueryRepo) List(ctx context.Context, f repository.QueryFilter) ([]models.Query, int, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	whereSQL, args := buildQueryWhere(f)

	countSQL := `SELECT COUNT(*) FROM queries ` + whereSQL
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortCol := sanitizeSort(f.Sort, "created_at")
	sortOrd := sanitizeOrder(f.Order, "desc")

	args = append(args, limit, offset)
	listSQL := fmt.Sprintf(`
		SELECT %s
		FROM queries
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, queryCols, whereSQL, sortCol, sortOrd, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Query
	for rows.Next() {
		var q models.Query
		if err := scanQuery(rows, &q); err != nil {
			return nil, 0, err
		}
		out = append(out, q)
	}
	return out, total, rows.Err()
}

func (r *QueryRepo) Update(ctx context.Context, q *models.Query) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE queries SET status=$1, admin_response=$2, resolved_at=$3
		WHERE id=$4
	`, q.Status, q.AdminResponse, q.ResolvedAt, q.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QueryRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM queries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByRequester returns the requester's own queries, newest first.
// Authenticated requesters match on requester_id, guests on email.
func (r *QueryRepo) ListByRequester(ctx context.Context, requesterID, email string) ([]models.Query, error) {
	var (
		cond string
		arg  string
	)
	if s := strings.TrimSpace(requesterID); s != "" {
		cond, arg = "requester_id = $1", s
	} else {
		cond, arg = "requester_email = $1", strings.TrimSpace(email)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+queryCols+`
		FROM queries
		WHERE `+cond+`
		ORDER BY created_at DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Query
	for rows.Next() {
		var q models.Query
		if err := scanQuery(rows, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Dashboard counters
// -----------------------------------------------------------------------------

// CountByStatus returns per-status counts plus the overall total,
// computed over the full store.
func (r *QueryRepo) CountByStatus(ctx context.Context) (map[models.Status]int, int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM queries GROUP BY status`)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := map[models.Status]int{}
	total := 0
	for rows.Next() {
		var st models.Status
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, 0, err
		}
		counts[st] = n
		total += n
	}
	return counts, total, rows.Err()
}

// CountByDay returns per-day (UTC, "2006-01-02") submission counts since the
// given time. Days with no submissions are absent; the caller zero-fills.
func (r *QueryRepo) CountByDay(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD'), COUNT(*)
		FROM queries
		WHERE created_at >= $1
		GROUP BY 1
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, err
		}
		out[day] = n
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// buildQueryWhere composes the WHERE clause and args for admin listing filters.
func buildQueryWhere(f repository.QueryFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	// free-text search (ILIKE) across message, name and email
	if s := strings.TrimSpace(f.Search); s != "" {
		p := "%" + s + "%"
		args = append(args, p, p, p)
		clauses = append(clauses,
			"(message ILIKE $"+itoa(len(args)-2)+
				" OR requester_name ILIKE $"+itoa(len(args)-1)+
				" OR requester_email ILIKE $"+itoa(len(args))+")")
	}

	// exact filters
	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		clauses = append(clauses, "status = $"+itoa(len(args)))
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		clauses = append(clauses, "category = $"+itoa(len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func sanitizeSort(s, def string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created_at", "status":
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return def
	}
}

func sanitizeOrder(o, def string) string {
	switch strings.ToLower(strings.TrimSpace(o)) {
	case "asc", "desc":
		return strings.ToLower(strings.TrimSpace(o))
	default:
		return def
	}
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// small helper to avoid fmt for performance-sensitive path.
func itoa(i int) string { return strconv.Itoa(i) }
