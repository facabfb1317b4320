package handlers

import (
	"net/http"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

type DashboardHTTP struct {
	svc *service.DashboardService
}

func NewDashboardHTTP(svc *service.DashboardService) *DashboardHTTP {
	return &DashboardHTTP{svc: svc}
}

// GET /api/dashboard
// Returns: { counts, timeseries, recent }. Any store failure is reported as
// an error; the dashboard UI falls back to placeholders on its side.
func (h *DashboardHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.svc.Counts(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		series, err := h.svc.Timeseries(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		recent, err := h.svc.Recent(r.Context(), 10)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"counts":     counts,
			"timeseries": series,
			"recent":     recent,
		})
	}
}
