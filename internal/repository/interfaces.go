package repository

import (
	"context"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
)

type QueryRepository interface {
	Create(ctx context.Context, q *models.Query) error
	Get(ctx context.Context, id string) (*models.Query, error)
	// List returns one page of records plus the total count for the filter.
	List(ctx context.Context, f QueryFilter) ([]models.Query, int, error)
	// Update persists the mutable fields (status, admin_response, resolved_at).
	Update(ctx context.Context, q *models.Query) error
	Delete(ctx context.Context, id string) error
	// ListByRequester matches authenticated requesters by id, guests by email.
	ListByRequester(ctx context.Context, requesterID, email string) ([]models.Query, error)

	// Dashboard counters.
	CountByStatus(ctx context.Context) (map[models.Status]int, int, error)
	CountByDay(ctx context.Context, since time.Time) (map[string]int, error)
}

type FAQRepository interface {
	// Upsert inserts a new entry (frequency 1) or atomically increments the
	// frequency of the entry whose question equals the given text.
	Upsert(ctx context.Context, question, category string) (*models.FAQ, error)
	// Put is the curated write path: insert a hand-written entry, or merge
	// answer/category/source into the existing entry for the question.
	// Frequency is never touched; empty fields leave stored values alone.
	Put(ctx context.Context, question, answer, category, sourceQueryID string) (*models.FAQ, error)
	Get(ctx context.Context, id string) (*models.FAQ, error)
	// List returns entries ordered by frequency desc, ties by earliest created_at.
	List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error)
	SetAnswer(ctx context.Context, id, answer string, category *string) (*models.FAQ, error)
	SetActive(ctx context.Context, id string, active bool) (*models.FAQ, error)
}

// BlockRepository keeps the submission blocklist. Callers pass lowercased,
// trimmed addresses.
type BlockRepository interface {
	// Toggle blocks the email, or lifts an existing block.
	Toggle(ctx context.Context, email string) (*models.BlockedEmail, error)
	IsBlocked(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.BlockedEmail, error)
}

type AdminRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Admin, error)
}
