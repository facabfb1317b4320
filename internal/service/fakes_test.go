package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
)

// In-memory repository fakes for exercising the lifecycle rules without a
// database. Filtering and ordering mirror the store contract closely enough
// for the service-level properties under test.

type fakeQueryRepo struct {
	mu       sync.Mutex
	items    map[string]*models.Query
	seq      int
	failWith error // every method fails with this when set
}

func newFakeQueryRepo() *fakeQueryRepo {
	return &fakeQueryRepo{items: map[string]*models.Query{}}
}

func cloneQuery(q *models.Query) *models.Query {
	c := *q
	if q.ResolvedAt != nil {
		t := *q.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}

func (r *fakeQueryRepo) Create(ctx context.Context, q *models.Query) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.seq++
	q.ID = fmt.Sprintf("q-%d", r.seq)
	q.Status = models.StatusPending
	q.ResolvedAt = nil
	q.CreatedAt = time.Now().UTC()
	r.items[q.ID] = cloneQuery(q)
	return nil
}

func (r *fakeQueryRepo) Get(ctx context.Context, id string) (*models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	q, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneQuery(q), nil
}

func (r *fakeQueryRepo) List(ctx context.Context, f repository.QueryFilter) ([]models.Query, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	var all []models.Query
	for _, q := range r.items {
		if f.Status != "" && string(q.Status) != f.Status {
			continue
		}
		if f.Category != "" && q.Category != f.Category {
			continue
		}
		if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
			if !strings.Contains(strings.ToLower(q.Message), s) &&
				!strings.Contains(strings.ToLower(q.RequesterName), s) &&
				!strings.Contains(strings.ToLower(q.RequesterEmail), s) {
				continue
			}
		}
		all = append(all, *cloneQuery(q))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := len(all)
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeQueryRepo) Update(ctx context.Context, q *models.Query) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.items[q.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[q.ID] = cloneQuery(q)
	return nil
}

func (r *fakeQueryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeQueryRepo) ListByRequester(ctx context.Context, requesterID, email string) ([]models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Query
	for _, q := range r.items {
		if requesterID != "" {
			if q.RequesterID == requesterID {
				out = append(out, *cloneQuery(q))
			}
		} else if q.RequesterEmail == email {
			out = append(out, *cloneQuery(q))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQueryRepo) CountByStatus(ctx context.Context) (map[models.Status]int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	counts := map[models.Status]int{}
	for _, q := range r.items {
		counts[q.Status]++
	}
	return counts, len(r.items), nil
}

func (r *fakeQueryRepo) CountByDay(ctx context.Context, since time.Time) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := map[string]int{}
	for _, q := range r.items {
		if q.CreatedAt.Before(since) {
			continue
		}
		out[q.CreatedAt.UTC().Format("2006-01-02")]++
	}
	return out, nil
}

// seed inserts a record directly, bypassing creation defaults.
func (r *fakeQueryRepo) seed(q models.Query) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if q.ID == "" {
		q.ID = fmt.Sprintf("q-%d", r.seq)
	}
	r.items[q.ID] = cloneQuery(&q)
}

type fakeFAQRepo struct {
	mu       sync.Mutex
	byText   map[string]*models.FAQ
	seq      int
	failWith error
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{byText: map[string]*models.FAQ{}}
}

func (r *fakeFAQRepo) Upsert(ctx context.Context, question, category string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if f, ok := r.byText[question]; ok {
		f.Frequency++
		c := *f
		return &c, nil
	}
	r.seq++
	f := &models.FAQ{
		ID:        fmt.Sprintf("faq-%d", r.seq),
		Question:  question,
		Category:  category,
		Frequency: 1,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	r.byText[question] = f
	c := *f
	return &c, nil
}

func (r *fakeFAQRepo) Put(ctx context.Context, question, answer, category, sourceQueryID string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	f, ok := r.byText[question]
	if !ok {
		r.seq++
		f = &models.FAQ{
			ID:        fmt.Sprintf("faq-%d", r.seq),
			Question:  question,
			Frequency: 1,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}
		r.byText[question] = f
	}
	if answer != "" {
		f.Answer = answer
	}
	if category != "" {
		f.Category = category
	}
	if sourceQueryID != "" {
		f.SourceQueryID = sourceQueryID
	}
	c := *f
	return &c, nil
}

func (r *fakeFAQRepo) Get(ctx context.Context, id string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.byText {
		if f.ID == id {
			c := *f
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFAQRepo) List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FAQ
	for _, f := range r.byText {
		if category != "" && f.Category != category {
			continue
		}
		if activeOnly && !f.Active {
			continue
		}
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeFAQRepo) SetAnswer(ctx context.Context, id, answer string, category *string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.byText {
		if f.ID == id {
			f.Answer = answer
			if category != nil {
				f.Category = *category
			}
			c := *f
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFAQRepo) SetActive(ctx context.Context, id string, active bool) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.byText {
		if f.ID == id {
			f.Active = active
			c := *f
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeBlockRepo struct {
	mu       sync.Mutex
	byEmail  map[string]*models.BlockedEmail
	failWith error
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{byEmail: map[string]*models.BlockedEmail{}}
}

func (r *fakeBlockRepo) Toggle(ctx context.Context, email string) (*models.BlockedEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	b, ok := r.byEmail[email]
	if !ok {
		b = &models.BlockedEmail{Email: email, Active: true, CreatedAt: time.Now().UTC()}
		r.byEmail[email] = b
	} else {
		b.Active = !b.Active
	}
	c := *b
	return &c, nil
}

func (r *fakeBlockRepo) IsBlocked(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	b, ok := r.byEmail[email]
	return ok && b.Active, nil
}

func (r *fakeBlockRepo) List(ctx context.Context) ([]models.BlockedEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BlockedEmail
	for _, b := range r.byEmail {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type adminRec struct {
	admin models.Admin
	hash  string
}

type fakeAdminRepo struct {
	mu      sync.Mutex
	byUser  map[string]*adminRec
	seq     int
	creates int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byUser: map[string]*adminRec{}}
}

func (r *fakeAdminRepo) Create(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[username]; ok {
		return nil, fmt.Errorf("duplicate username %q", username)
	}
	r.seq++
	r.creates++
	rec := &adminRec{
		admin: models.Admin{
			ID:        fmt.Sprintf("a-%d", r.seq),
			Username:  username,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		},
		hash: passwordHash,
	}
	r.byUser[username] = rec
	c := rec.admin
	return &c, nil
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byUser[username]
	if !ok {
		return nil, "", repository.ErrNotFound
	}
	c := rec.admin
	return &c, rec.hash, nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.byUser {
		if rec.admin.ID == id {
			c := rec.admin
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Admin
	for _, rec := range r.byUser {
		out = append(out, rec.admin)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeAdminRepo) SetActive(ctx context.Context, id string, active bool) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.byUser {
		if rec.admin.ID == id {
			rec.admin.Active = active
			c := rec.admin
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string // query ids
}

func (n *recordingNotifier) QueryResponded(ctx context.Context, q *models.Query) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, q.ID)
}
