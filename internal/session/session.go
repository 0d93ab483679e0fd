package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/config"
	"github.com/roshni-energy/crm-service/internal/domain"
	"github.com/roshni-energy/crm-service/internal/repository"
)

// ErrInvalidCredentials is returned for any login failure; callers get no
// hint whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service is the identity component: it resolves "who is using the app" and
// issues the token that stands in for the session. Credential checking is
// behind the Verifier interface so the demo shared-secret mode and real
// per-user hashes are interchangeable.
type Service struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	verifier   Verifier
	bcryptCost int
}

// NewService builds the service, selecting the verifier from config: a
// non-empty demo shared secret enables the fixed-credential stub, otherwise
// per-user bcrypt hashes are required.
func NewService(cfg config.Config, users repository.UserRepository) *Service {
	var verifier Verifier
	if cfg.Auth.DemoSharedSecret != "" {
		verifier = SharedSecretVerifier{Secret: cfg.Auth.DemoSharedSecret}
	} else {
		verifier = BcryptVerifier{}
	}
	return &Service{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		verifier:   verifier,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login resolves a user by exact email match and verifies the password.
// Inactive users are rejected.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !user.IsActive {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.verifier.Verify(user, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout is a no-op for the stateless token approach.
func (s *Service) Logout(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
// Unavailable in demo mode.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if _, ok := s.verifier.(SharedSecretVerifier); ok {
		return errors.New("password change unavailable in demo mode")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.verifier.Verify(user, currentPassword); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *Service) TokenManager() *auth.TokenManager {
	return s.tokens
}
