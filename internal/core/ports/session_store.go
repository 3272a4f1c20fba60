package ports

import (
	"context"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// SessionStore issues, resolves, and revokes opaque session tokens.
//
// Resolve is idempotent and side-effect free: it never extends a session's
// lifetime. Resolving an unknown or expired token returns
// domain.ErrUnauthenticated. Implementations must be safe for concurrent use;
// each token is an independent entry.
type SessionStore interface {
	Create(ctx context.Context, identity domain.Identity) (string, error)
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
	Destroy(ctx context.Context, token string) error
}
