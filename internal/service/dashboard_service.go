package service

import (
	"context"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
)

// timeseriesDays is the fixed dashboard window: the most recent 30 day
// buckets, gaps zero-filled.
const timeseriesDays = 30

type DashboardService struct {
	queries repository.QueryRepository
}

func NewDashboardService(queries repository.QueryRepository) *DashboardService {
	return &DashboardService{queries: queries}
}

type Counts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

type DayCount struct {
	Date  string `json:"date"` // "2006-01-02", UTC
	Count int    `json:"count"`
}

// Counts aggregates status totals over the full store (no recency window).
// A store failure comes back as an error; graceful degradation is the
// dashboard UI's job.
func (s *DashboardService) Counts(ctx context.Context) (Counts, error) {
	byStatus, total, err := s.queries.CountByStatus(ctx)
	if err != nil {
		return Counts{}, err
	}
	return Counts{
		Total:      total,
		Pending:    byStatus[models.StatusPending],
		InProgress: byStatus[models.StatusInProgress],
		Resolved:   byStatus[models.StatusResolved],
	}, nil
}

// Timeseries buckets submissions per UTC day over the last 30 days,
// ascending, with an explicit zero entry for days without submissions.
func (s *DashboardService) Timeseries(ctx context.Context) ([]DayCount, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(timeseriesDays - 1))

	byDay, err := s.queries.CountByDay(ctx, since)
	if err != nil {
		return nil, err
	}

	out := make([]DayCount, 0, timeseriesDays)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, DayCount{Date: key, Count: byDay[key]})
	}
	return out, nil
}

// Recent returns the latest n queries for the dashboard's activity panel.
func (s *DashboardService) Recent(ctx context.Context, n int) ([]models.Query, error) {
	if n <= 0 {
		n = 10
	}
	items, _, err := s.queries.List(ctx, repository.QueryFilter{Page: 1, Limit: n})
	return items, err
}
