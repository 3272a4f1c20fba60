package ports

import (
	"context"
	"time"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// ListSubmissionsInput carries all parameters for the list endpoint.
type ListSubmissionsInput struct {
	Status   string // optional: pending, approved or rejected
	Search   string // optional: case-insensitive match on title or content
	Page     int    // 1-based; values < 1 are treated as 1
	PageSize int    // defaults to 20, capped at 100
}

// SubmissionSummary is the lightweight view used in list responses.
type SubmissionSummary struct {
	ID              string
	Title           string
	AuthorName      string
	Status          string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Pagination describes the page window of a list response. CurrentPage and
// TotalItems derive from a single count query executed against the same
// filter as the items, so totals never skew from the rows shown.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// ListSubmissionsResult is returned by List.
type ListSubmissionsResult struct {
	Items      []SubmissionSummary
	Pagination Pagination
}

// ListingService builds filtered, paginated views over submissions.
type ListingService interface {
	List(ctx context.Context, input ListSubmissionsInput) (*ListSubmissionsResult, error)
	// Get returns the full submission record for the review screen.
	Get(ctx context.Context, id string) (*domain.Submission, error)
}
