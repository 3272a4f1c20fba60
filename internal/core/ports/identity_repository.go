package ports

import (
	"context"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// IdentityRepository defines read access to provisioned staff identities.
// Identities are created and rotated out of band; the back-office never
// writes them.
type IdentityRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}
