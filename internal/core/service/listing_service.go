package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type listingService struct {
	submissions ports.SubmissionRepository
	log         zerolog.Logger
}

// NewListingService returns the ListingService implementation.
func NewListingService(submissions ports.SubmissionRepository, log zerolog.Logger) ports.ListingService {
	return &listingService{submissions: submissions, log: log}
}

// List returns one page of submissions matching the filters. A page beyond
// the last returns an empty item set with the requested page reported as-is
// and true totals; callers detect the overrun from total_pages.
func (s *listingService) List(ctx context.Context, input ports.ListSubmissionsInput) (*ports.ListSubmissionsResult, error) {
	if input.Status != "" && !domain.SubmissionStatus(input.Status).IsValid() {
		return nil, fmt.Errorf("list submissions: unknown status %q: %w", input.Status, domain.ErrValidation)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.submissions.List(ctx, ports.ListSubmissionsFilter{
		Status: input.Status,
		Search: input.Search,
		Page:   page,
		Limit:  pageSize,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list submissions")
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	summaries := make([]ports.SubmissionSummary, 0, len(items))
	for _, sub := range items {
		summaries = append(summaries, ports.SubmissionSummary{
			ID:              sub.ID,
			Title:           sub.Title,
			AuthorName:      sub.AuthorName,
			Status:          string(sub.Status),
			RejectionReason: sub.RejectionReason,
			CreatedAt:       sub.CreatedAt,
			UpdatedAt:       sub.UpdatedAt,
		})
	}

	return &ports.ListSubmissionsResult{
		Items: summaries,
		Pagination: ports.Pagination{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}, nil
}

// Get returns the full submission record for the review screen.
func (s *listingService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return sub, nil
}
