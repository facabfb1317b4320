package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/middleware"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: s}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, adm, err := h.svc.Login(r.Context(), in.Username, in.Password)
		if err != nil {
			writeErr(w, err)
			return
		}

		// Issue httpOnly session cookie
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			// Lax works for same-origin (frontend via Nginx proxy)
			SameSite: http.SameSiteLaxMode,
			// Set true behind HTTPS in prod
			Secure:  false,
			Expires: time.Now().Add(24 * time.Hour),
		})

		utils.JSON(w, http.StatusOK, adm)
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aid, ok := utils.GetString(r.Context(), middleware.CtxAdminID)
		if !ok || aid == "" {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		adm, err := h.svc.GetByID(r.Context(), aid)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, adm)
	}
}
