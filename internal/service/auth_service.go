package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	admins        repository.AdminRepository
	sessionSecret string
}

func NewAuthService(admins repository.AdminRepository, sessionSecret string) *AuthService {
	return &AuthService{admins: admins, sessionSecret: sessionSecret}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed session token. Deactivated admins cannot log in.
func (a *AuthService) Login(ctx context.Context, username, password string) (token string, admin *models.Admin, err error) {
	adm, hash, err := a.admins.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !adm.Active {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.sessionSecret, adm.ID, "admin", 24*time.Hour)
	if err != nil {
		return "", nil, err
	}
	return tok, adm, nil
}

func (a *AuthService) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return a.admins.GetByID(ctx, id)
}

// EnsureDefaultAdmin seeds the bootstrap admin account. Idempotent: invoked
// once at startup, it only writes when the username is absent.
func (a *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("default admin credentials are empty")
	}
	_, _, err := a.admins.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = a.admins.Create(ctx, username, hash)
	return err
}
