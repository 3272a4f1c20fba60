package ports

import (
	"context"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// AuthService authenticates staff credentials and manages their sessions.
type AuthService interface {
	// Login verifies the credentials and issues a session token bound to the
	// identity. Bad username and bad password are indistinguishable to the
	// caller: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Identity, error)
	// Logout revokes the session token. Revoking an unknown token is a no-op.
	Logout(ctx context.Context, token string) error
}
