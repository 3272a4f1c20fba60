package ports

import (
	"context"
	"time"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// ListSubmissionsFilter carries all query parameters for listing submissions.
type ListSubmissionsFilter struct {
	Status string // optional: filter to exactly this review status
	Search string // optional: case-insensitive match on title or content
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by the service)
}

// TransitionUpdate carries the fields written by a successful status transition.
type TransitionUpdate struct {
	Status          domain.SubmissionStatus
	RejectionReason string // empty for approve
	ReviewedBy      string
	UpdatedAt       time.Time
}

// SubmissionRepository defines persistence operations for submissions.
// The back-office never creates submissions; the authoring flow owns that.
type SubmissionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Submission, error)

	// List returns a page of submissions matching filter and the total count.
	// Both derive from the same filter predicate so totals never skew from
	// the items shown. Ordering is created_at descending with id as tiebreak.
	List(ctx context.Context, filter ListSubmissionsFilter) ([]*domain.Submission, int64, error)

	// TransitionFromPending applies update to the submission only if its
	// current status is still pending — a single-document compare-and-swap.
	// Returns domain.ErrSubmissionNotFound when the id does not exist and
	// domain.ErrInvalidTransition when it exists but has already left pending.
	TransitionFromPending(ctx context.Context, id string, update TransitionUpdate) error

	// Delete removes the submission entirely. Returns
	// domain.ErrSubmissionNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error
}

// ReviewEventRepository persists the moderation audit trail.
type ReviewEventRepository interface {
	Insert(ctx context.Context, event *domain.ReviewEvent) error
}
