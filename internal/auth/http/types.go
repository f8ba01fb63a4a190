package http

import (
	"context"

	"github.com/protrack-dev/protrack-backend/internal/auth/domain"
)

// Service is the account-store surface the handlers need. Satisfied by
// service.AuthService.
type Service interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// Handler bundles the dependencies for user HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type tokenReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
