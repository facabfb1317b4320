package service

import (
	"context"
	"testing"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
)

func TestCounts(t *testing.T) {
	queries := newFakeQueryRepo()
	svc := NewDashboardService(queries)

	now := time.Now().UTC()
	resolvedAt := now
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: now})
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: now})
	queries.seed(models.Query{Status: models.StatusInProgress, CreatedAt: now})
	queries.seed(models.Query{Status: models.StatusResolved, ResolvedAt: &resolvedAt, CreatedAt: now})

	c, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	want := Counts{Total: 4, Pending: 2, InProgress: 1, Resolved: 1}
	if c != want {
		t.Fatalf("expected %+v, got %+v", want, c)
	}
}

func TestTimeseriesZeroFills(t *testing.T) {
	queries := newFakeQueryRepo()
	svc := NewDashboardService(queries)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	// two submissions today, one three days ago, nothing in between
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: today.Add(2 * time.Hour)})
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: today.Add(5 * time.Hour)})
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: today.AddDate(0, 0, -3).Add(time.Hour)})
	// outside the window, must not appear
	queries.seed(models.Query{Status: models.StatusPending, CreatedAt: today.AddDate(0, 0, -40)})

	series, err := svc.Timeseries(context.Background())
	if err != nil {
		t.Fatalf("Timeseries failed: %v", err)
	}
	if len(series) != 30 {
		t.Fatalf("expected 30 buckets, got %d", len(series))
	}
	// ascending by date, ending today
	for i := 1; i < len(series); i++ {
		if series[i-1].Date >= series[i].Date {
			t.Fatalf("buckets not ascending: %s >= %s", series[i-1].Date, series[i].Date)
		}
	}
	last := series[len(series)-1]
	if last.Date != today.Format("2006-01-02") || last.Count != 2 {
		t.Fatalf("expected today with count 2, got %+v", last)
	}
	if got := series[len(series)-4]; got.Count != 1 {
		t.Fatalf("expected count 1 three days ago, got %+v", got)
	}
	// a gap day still appears, with an explicit zero
	if got := series[len(series)-2]; got.Count != 0 {
		t.Fatalf("expected zero-filled bucket for yesterday, got %+v", got)
	}
	total := 0
	for _, b := range series {
		total += b.Count
	}
	if total != 3 {
		t.Fatalf("expected 3 submissions inside the window, got %d", total)
	}
}

func TestRecent(t *testing.T) {
	queries := newFakeQueryRepo()
	svc := NewDashboardService(queries)

	now := time.Now().UTC()
	queries.seed(models.Query{ID: "old", Status: models.StatusPending, CreatedAt: now.Add(-2 * time.Hour)})
	queries.seed(models.Query{ID: "new", Status: models.StatusPending, CreatedAt: now})

	recent, err := svc.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "new" {
		t.Fatalf("expected newest record only, got %+v", recent)
	}
}
