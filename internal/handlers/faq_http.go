package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

type FAQHTTP struct {
	svc *service.FAQService
}

func NewFAQHTTP(svc *service.FAQService) *FAQHTTP { return &FAQHTTP{svc: svc} }

// GET /api/faqs?category= — public page, active entries only.
func (h *FAQHTTP) ListPublic() http.HandlerFunc {
	return h.list(true)
}

// GET /api/faqs/all?category= — admin management view, everything.
func (h *FAQHTTP) ListAll() http.HandlerFunc {
	return h.list(false)
}

func (h *FAQHTTP) list(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		items, err := h.svc.List(r.Context(), category, activeOnly)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// POST /api/faqs — hand-written entry (admin).
func (h *FAQHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Category string `json:"category"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		f, err := h.svc.Create(r.Context(), in.Question, in.Answer, in.Category)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, f)
	}
}

// PATCH /api/faqs/{id} — curate answer (and optionally category).
func (h *FAQHTTP) SetAnswer() http.HandlerFunc {
	type inDTO struct {
		Answer   string  `json:"answer"`
		Category *string `json:"category"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		f, err := h.svc.SetAnswer(r.Context(), id, strings.TrimSpace(in.Answer), in.Category)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, f)
	}
}

// POST /api/faqs/{id}/toggle — flip public visibility.
func (h *FAQHTTP) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		f, err := h.svc.Toggle(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, f)
	}
}
