package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/notify"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"

	"github.com/rs/zerolog"
)

var (
	// ErrValidation rejects a submission with a missing required field,
	// before anything is written.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidStatus rejects a transition to an unrecognized status value,
	// leaving the stored record unchanged.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrBlocked rejects a submission whose email is on the blocklist.
	ErrBlocked = errors.New("requester blocked")
)

// QueryService owns the query lifecycle: creation defaults, the status state
// machine, and the synchronous best-effort FAQ aggregation on submit.
type QueryService struct {
	queries  repository.QueryRepository
	faqs     repository.FAQRepository
	blocked  repository.BlockRepository
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewQueryService(queries repository.QueryRepository, faqs repository.FAQRepository, blocked repository.BlockRepository, n notify.Notifier, l zerolog.Logger) *QueryService {
	return &QueryService{queries: queries, faqs: faqs, blocked: blocked, notifier: n, log: l}
}

// Submission is the intake payload from the web form / API collaborator.
// RequesterID is never taken from the request body: the HTTP layer fills it
// from the session subject, and guests leave it empty and are later
// identified by email.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	RequesterID string `json:"-"`
	Category    string `json:"category"`
	Message     string `json:"message"`
}

// Submit stores a new query and then offers its message to the FAQ
// aggregator. The two steps are deliberately separate writes: once the query
// is persisted, an aggregation failure is logged and swallowed so it can
// never fail the submission.
func (s *QueryService) Submit(ctx context.Context, in Submission) (*models.Query, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case in.Email == "":
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	case in.Message == "":
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	// Blocklist matches on the lowercased address, so a blocked guest cannot
	// resubmit by changing the casing.
	blocked, err := s.blocked.IsBlocked(ctx, strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("%w: submissions from this email are not accepted", ErrBlocked)
	}

	q := &models.Query{
		RequesterName:  in.Name,
		RequesterEmail: in.Email,
		RequesterID:    strings.TrimSpace(in.RequesterID),
		Category:       in.Category,
		Message:        in.Message,
		Status:         models.StatusPending,
	}
	if err := s.queries.Create(ctx, q); err != nil {
		return nil, err
	}

	// Matching policy: exact match on the trimmed message text,
	// case-sensitive (distinct casings stay distinct entries).
	if _, err := s.faqs.Upsert(ctx, q.Message, q.Category); err != nil {
		s.log.Error().Err(err).Str("query_id", q.ID).Msg("faq aggregation failed")
	}

	return q, nil
}

func (s *QueryService) Get(ctx context.Context, id string) (*models.Query, error) {
	return s.queries.Get(ctx, id)
}

func (s *QueryService) List(ctx context.Context, f repository.QueryFilter) ([]models.Query, int, error) {
	return s.queries.List(ctx, f)
}

func (s *QueryService) ListByRequester(ctx context.Context, requesterID, email string) ([]models.Query, error) {
	return s.queries.ListByRequester(ctx, requesterID, email)
}

// Patch carries the only admin-mutable fields. Nil means "leave unchanged".
type Patch struct {
	Status        *string `json:"status"`
	AdminResponse *string `json:"adminResponse"`
}

// Update applies a status transition and/or an admin response. All six
// transitions between the three statuses are legal (reversals included, for
// admin correction); entering resolved stamps ResolvedAt and leaving it
// clears the stamp, so ResolvedAt is non-nil exactly when the query is
// resolved. The returned bool reports whether a new admin response landed,
// which is what the notification collaborator subscribes to.
func (s *QueryService) Update(ctx context.Context, id string, p Patch) (*models.Query, bool, error) {
	q, err := s.queries.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if p.Status != nil {
		st, ok := models.ParseStatus(strings.TrimSpace(*p.Status))
		if !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrInvalidStatus, *p.Status)
		}
		if st == models.StatusResolved {
			if q.Status != models.StatusResolved {
				now := time.Now().UTC()
				q.ResolvedAt = &now
			}
		} else {
			q.ResolvedAt = nil
		}
		q.Status = st
	}

	responded := false
	if p.AdminResponse != nil {
		text := strings.TrimSpace(*p.AdminResponse)
		if text != "" && text != q.AdminResponse {
			responded = true
		}
		q.AdminResponse = text
	}

	if err := s.queries.Update(ctx, q); err != nil {
		return nil, false, err
	}

	if responded && s.notifier != nil {
		s.notifier.QueryResponded(ctx, q)
	}
	return q, responded, nil
}

// Promote copies a query into the FAQ list: the message becomes the question
// and the current admin response becomes the answer. When the question is
// already aggregated the existing entry is curated instead of duplicated,
// and its frequency stays as is.
func (s *QueryService) Promote(ctx context.Context, id string) (*models.FAQ, error) {
	q, err := s.queries.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.faqs.Put(ctx, strings.TrimSpace(q.Message), strings.TrimSpace(q.AdminResponse), q.Category, q.ID)
}

// Delete removes the record permanently (hard delete, no tombstone).
func (s *QueryService) Delete(ctx context.Context, id string) error {
	return s.queries.Delete(ctx, id)
}
