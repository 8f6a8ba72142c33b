package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleCustomer,
	}
}

// signTestToken builds a token outside the service so expiry and type can be
// forced to arbitrary values.
func signTestToken(t *testing.T, secret, sub, role, typ string, exp time.Time) string {
	t.Helper()
	claims := tokenClaims{
		Role: role,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenService_IssueValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.Access == pair.Refresh {
		t.Fatalf("access and refresh must differ")
	}

	claims, err := svc.Validate(pair.Access)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != ports.TokenTypeAccess {
		t.Fatalf("expected access type, got %s", claims.TokenType)
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)
	expired := signTestToken(t, "secret", "user-1", domain.RoleCustomer, ports.TokenTypeAccess, time.Now().Add(-time.Minute))

	if _, err := svc.Validate(expired); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)
	forged := signTestToken(t, "other-secret", "user-1", domain.RoleCustomer, ports.TokenTypeAccess, time.Now().Add(time.Hour))

	if _, err := svc.Validate(forged); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)

	if _, err := svc.Validate("not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Validate_RejectsRefreshToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Validate(pair.Refresh); err != domain.ErrTokenInvalid {
		t.Fatalf("refresh token must not validate as access, got %v", err)
	}
}

func TestTokenService_Refresh(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	access, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := svc.Validate(access)
	if err != nil {
		t.Fatalf("validate refreshed access: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleCustomer {
		t.Fatalf("refreshed token bound to wrong subject: %+v", claims)
	}
}

func TestTokenService_Refresh_RejectsAccessToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Refresh(pair.Access); err != domain.ErrTokenInvalid {
		t.Fatalf("access token must not be redeemable, got %v", err)
	}
}

func TestTokenService_Refresh_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 24*time.Hour)
	expired := signTestToken(t, "secret", "user-1", domain.RoleCustomer, ports.TokenTypeRefresh, time.Now().Add(-time.Minute))

	if _, err := svc.Refresh(expired); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
