package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/middleware"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

// QueryHTTP wires the query lifecycle endpoints to the service.
type QueryHTTP struct {
	svc *service.QueryService
}

func NewQueryHTTP(svc *service.QueryService) *QueryHTTP { return &QueryHTTP{svc: svc} }

// POST /api/queries (public intake)
func (h *QueryHTTP) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.Submission
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		// identity binds from the session, never from the body
		in.RequesterID, _ = utils.GetString(r.Context(), middleware.CtxAdminID)
		q, err := h.svc.Submit(r.Context(), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, q)
	}
}

// GET /api/queries/mine?email= — the requester's own status view. A session
// subject takes precedence; guests identify by the email they submitted with.
func (h *QueryHTTP) Mine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, _ := utils.GetString(r.Context(), middleware.CtxAdminID)
		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if requesterID == "" && email == "" {
			utils.Error(w, http.StatusBadRequest, "email is required")
			return
		}
		items, err := h.svc.ListByRequester(r.Context(), requesterID, email)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// GET /api/queries?status=&category=&q=&page=&limit=&sort=&order= (admin)
func (h *QueryHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		f := repository.QueryFilter{
			Status:   strings.TrimSpace(qv.Get("status")),
			Category: strings.TrimSpace(qv.Get("category")),
			Search:   strings.TrimSpace(qv.Get("q")),
			Page:     utils.QueryInt(qv, "page", 1),
			Limit:    utils.QueryInt(qv, "limit", 20),
			Sort:     qv.Get("sort"),
			Order:    qv.Get("order"),
		}
		items, total, err := h.svc.List(r.Context(), f)
		if err != nil {
			writeErr(w, err)
			return
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(total))
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

// GET /api/queries/{id} (admin)
func (h *QueryHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		q, err := h.svc.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, q)
	}
}

// PATCH /api/queries/{id} (admin) — status and/or adminResponse.
func (h *QueryHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		var in service.Patch
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		q, responded, err := h.svc.Update(r.Context(), id, in)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"query": q, "responded": responded})
	}
}

// POST /api/queries/{id}/faq (admin) — promote into the FAQ list.
func (h *QueryHTTP) Promote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		f, err := h.svc.Promote(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, f)
	}
}

// DELETE /api/queries/{id} (admin) — hard delete.
func (h *QueryHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := h.svc.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
