package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

// BlockHTTP manages the guest-email submission blocklist.
type BlockHTTP struct {
	repo repository.BlockRepository
}

func NewBlockHTTP(r repository.BlockRepository) *BlockHTTP {
	return &BlockHTTP{repo: r}
}

// GET /api/blocked
func (h *BlockHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.repo.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// POST /api/blocked/toggle — block an email, or lift an existing block.
func (h *BlockHTTP) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email == "" {
			utils.Error(w, http.StatusBadRequest, "email is required")
			return
		}
		b, err := h.repo.Toggle(r.Context(), email)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, b)
	}
}
