package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

// AuthService implements credential verification and session lifecycle.
type AuthService struct {
	identities ports.IdentityRepository
	sessions   ports.SessionStore
	log        zerolog.Logger
}

func NewAuthService(identities ports.IdentityRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{identities: identities, sessions: sessions, log: log}
}

// Login verifies the credentials and issues an opaque session token.
// A missing identity and a wrong password produce the same error so the
// response never reveals which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrIdentityNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, *identity)
	if err != nil {
		return "", nil, fmt.Errorf("login: create session: %w", err)
	}

	s.log.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("login succeeded")

	return token, identity, nil
}

// Logout revokes the session token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
