package ports

import "github.com/sweetshop/sweetshop-api/internal/core/domain"

// Token types carried in the "typ" claim. Access tokens authenticate
// requests; refresh tokens may only be redeemed for a new access token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the verified payload of a token.
type Claims struct {
	UserID    string
	Role      string
	TokenType string
}

// TokenService issues and validates stateless signed tokens. Validation is
// pure computation: no store is consulted, so any handler instance can
// verify a token independently.
type TokenService interface {
	Issue(user *domain.User) (*TokenPair, error)
	Validate(token string) (*Claims, error)
	Refresh(refreshToken string) (string, error)
}
