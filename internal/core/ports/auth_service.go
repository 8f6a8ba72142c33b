package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// TokenPair carries the two credentials handed out after registration or
// login: a short-lived access token and a longer-lived refresh token.
type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	Refresh(refreshToken string) (string, error)
}
