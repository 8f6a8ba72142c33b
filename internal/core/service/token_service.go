package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

const tokenIssuer = "sweetshop-api"

// tokenClaims is the signed payload. The "typ" claim separates access and
// refresh tokens so one can never stand in for the other.
type tokenClaims struct {
	Role string `json:"role"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed JWTs. Tokens are
// self-contained: no session table exists, validation never touches a store.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Issue produces an access/refresh pair bound to the user's identity and role.
func (s *TokenService) Issue(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.sign(user.ID, user.Role, ports.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(user.ID, user.Role, ports.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{Access: access, Refresh: refresh}, nil
}

// Validate verifies an access token and returns its claims.
func (s *TokenService) Validate(token string) (*ports.Claims, error) {
	return s.parse(token, ports.TokenTypeAccess)
}

// Refresh redeems a valid refresh token for a new access token bound to the
// same subject. The original credentials are not required.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken, ports.TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, claims.Role, ports.TokenTypeAccess, s.accessTTL)
}

func (s *TokenService) sign(subject, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: role,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token, wantType string) (*ports.Claims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" || claims.Type != wantType {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.Claims{
		UserID:    claims.Subject,
		Role:      claims.Role,
		TokenType: claims.Type,
	}, nil
}
