package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/sweetshop-api/internal/pkg/metrics"
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// AuthService implements registration, login, profile lookup and token
// refresh. Passwords are bcrypt-hashed before they reach the repository and
// are never logged.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a customer account and returns it with a fresh token
// pair. The role is always customer; admins are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, *ports.TokenPair, error) {
	if name == "" || email == "" || password == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.Issue(created)
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return created, pair, nil
}

// Login verifies the credentials and returns the user with a fresh token
// pair. An unknown email and a wrong password are distinct failures: the
// HTTP layer maps them to 404 and 401 respectively.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, pair, nil
}

// Profile resolves the account behind a validated access token.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Refresh redeems a refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	access, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return "", err
	}
	metrics.TokenRefreshesTotal.Inc()
	return access, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist
// yet. When it exists but the configured password changed, the stored hash
// is rotated so the env stays authoritative. Called once at startup; a
// no-op when email is unset.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.logger.Info().Str("email", email).Msg("bootstrap admin password rotated")
		return s.repo.UpdatePassword(ctx, existing.ID, string(hash))
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, admin); err != nil {
		// another instance may have won the race on the unique index
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("email", email).Msg("bootstrap admin created")
	return nil
}
