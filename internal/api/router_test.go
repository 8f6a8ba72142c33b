package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
	"github.com/sweetshop/sweetshop-api/internal/core/service"
)

type routerAuthStub struct{}

func (routerAuthStub) Register(context.Context, string, string, string) (*domain.User, *ports.TokenPair, error) {
	return nil, nil, domain.ErrInvalidInput
}

func (routerAuthStub) Login(context.Context, string, string) (*domain.User, *ports.TokenPair, error) {
	return nil, nil, domain.ErrInvalidCredentials
}

func (routerAuthStub) Profile(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (routerAuthStub) Refresh(string) (string, error) {
	return "", domain.ErrTokenInvalid
}

// routerCatalogStub records whether any mutation reached the service layer.
type routerCatalogStub struct {
	mutations int
}

func (s *routerCatalogStub) CreateSweet(context.Context, ports.CreateSweetInput) (*domain.Sweet, error) {
	s.mutations++
	return &domain.Sweet{ID: "sweet-1", Name: "Ladoo", Category: "traditional", Price: 30000, Stock: 18, Unit: "kg"}, nil
}

func (s *routerCatalogStub) GetSweet(context.Context, string) (*domain.Sweet, error) {
	return nil, domain.ErrSweetNotFound
}

func (s *routerCatalogStub) ListSweets(context.Context) ([]domain.Sweet, error) {
	return []domain.Sweet{}, nil
}

func (s *routerCatalogStub) UpdateSweet(context.Context, string, ports.UpdateSweetInput) (*domain.Sweet, error) {
	s.mutations++
	return nil, domain.ErrSweetNotFound
}

func (s *routerCatalogStub) DeleteSweet(context.Context, string) error {
	s.mutations++
	return nil
}

func (s *routerCatalogStub) ListCategories(context.Context) ([]ports.Category, error) {
	return []ports.Category{{Name: "all"}}, nil
}

// The router is built once: the prometheus middleware registers collectors
// with the default registry and must not run twice in one process.
func TestRouter_RoleGating(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour, 24*time.Hour)
	catalog := &routerCatalogStub{}

	e := NewRouter(Dependencies{
		Auth:    routerAuthStub{},
		Catalog: catalog,
		Tokens:  tokens,
		Logger:  zerolog.Nop(),
	})

	adminPair, err := tokens.Issue(&domain.User{ID: "admin-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	customerPair, err := tokens.Issue(&domain.User{ID: "cust-1", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue customer token: %v", err)
	}

	createBody := `{"name":"Ladoo","category":"traditional","price":"300.00","stock":18,"unit":"kg"}`

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("create without token is 401", func(t *testing.T) {
		rec := do(http.MethodPost, "/sweets/create", "", createBody)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if catalog.mutations != 0 {
			t.Fatalf("store must not be touched")
		}
	})

	t.Run("create as customer is 403 and store untouched", func(t *testing.T) {
		rec := do(http.MethodPost, "/sweets/create", customerPair.Access, createBody)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if catalog.mutations != 0 {
			t.Fatalf("forbidden request must not reach the service")
		}
	})

	t.Run("create as admin is 201", func(t *testing.T) {
		rec := do(http.MethodPost, "/sweets/create", adminPair.Access, createBody)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if catalog.mutations != 1 {
			t.Fatalf("expected exactly one mutation, got %d", catalog.mutations)
		}
	})

	t.Run("delete as customer is 403", func(t *testing.T) {
		rec := do(http.MethodDelete, "/sweets/sweet-1/delete", customerPair.Access, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		rec := do(http.MethodPost, "/sweets/create", adminPair.Refresh, createBody)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for refresh token, got %d", rec.Code)
		}
	})

	t.Run("public list needs no token", func(t *testing.T) {
		rec := do(http.MethodGet, "/sweets/", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("unknown sweet is a 404 envelope", func(t *testing.T) {
		rec := do(http.MethodGet, "/sweets/does-not-exist", "", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("expected error envelope, got %s", rec.Body.String())
		}
	})

	t.Run("profile without token is 401", func(t *testing.T) {
		rec := do(http.MethodGet, "/auth/profile", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("categories are public", func(t *testing.T) {
		rec := do(http.MethodGet, "/categories/", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"all"`) {
			t.Fatalf("expected all entry, got %s", rec.Body.String())
		}
	})
}
