package ports

import (
	"context"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// ModerationService is the sole authority over submission status transitions.
// Every operation records the acting identity for the audit trail.
type ModerationService interface {
	// Approve moves a pending submission to approved.
	Approve(ctx context.Context, submissionID string, actor domain.Identity) error
	// Reject moves a pending submission to rejected with a non-empty reason.
	// A blank or whitespace-only reason fails with domain.ErrValidation
	// before any write.
	Reject(ctx context.Context, submissionID, reason string, actor domain.Identity) error
	// Delete removes the submission entirely. Admin authority only; the
	// role gate enforces this upstream and the service re-checks it.
	Delete(ctx context.Context, submissionID string, actor domain.Identity) error
}
