package handlers

import (
	"errors"
	"net/http"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

// writeErr maps core errors onto HTTP statuses. Anything unrecognized is a
// store failure and comes back as a 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrBlocked):
		utils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
