package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

type AdminHTTP struct {
	repo repository.AdminRepository
}

func NewAdminHTTP(r repository.AdminRepository) *AdminHTTP {
	return &AdminHTTP{repo: r}
}

// GET /api/admins
func (h *AdminHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := h.repo.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": admins})
	}
}

// PATCH /api/admins/{id}/active
func (h *AdminHTTP) SetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		adm, err := h.repo.SetActive(r.Context(), id, req.Active)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, adm)
	}
}
