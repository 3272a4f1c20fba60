package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

type moderationService struct {
	submissions ports.SubmissionRepository
	events      ports.ReviewEventRepository
	log         zerolog.Logger
}

// NewModerationService returns the ModerationService implementation. It is
// the only writer of submission status, rejection reason, and updated_at.
func NewModerationService(
	submissions ports.SubmissionRepository,
	events ports.ReviewEventRepository,
	log zerolog.Logger,
) ports.ModerationService {
	return &moderationService{
		submissions: submissions,
		events:      events,
		log:         log,
	}
}

// Approve moves a pending submission to approved. The write is a conditional
// update on "status is still pending"; losing the race to another reviewer
// surfaces as ErrInvalidTransition rather than success.
func (s *moderationService) Approve(ctx context.Context, submissionID string, actor domain.Identity) error {
	now := time.Now().UTC()
	err := s.submissions.TransitionFromPending(ctx, submissionID, ports.TransitionUpdate{
		Status:     domain.StatusApproved,
		ReviewedBy: actor.ID,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("approve %s: %w", submissionID, err)
	}

	s.recordEvent(ctx, submissionID, domain.ActionApprove, actor.ID, "", now)
	s.log.Info().Str("submission_id", submissionID).Str("actor", actor.Username).Msg("submission approved")
	return nil
}

// Reject moves a pending submission to rejected. The reason is validated
// before any write so a failed call leaves the record untouched.
func (s *moderationService) Reject(ctx context.Context, submissionID, reason string, actor domain.Identity) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("reject %s: rejection reason required: %w", submissionID, domain.ErrValidation)
	}

	now := time.Now().UTC()
	err := s.submissions.TransitionFromPending(ctx, submissionID, ports.TransitionUpdate{
		Status:          domain.StatusRejected,
		RejectionReason: reason,
		ReviewedBy:      actor.ID,
		UpdatedAt:       now,
	})
	if err != nil {
		return fmt.Errorf("reject %s: %w", submissionID, err)
	}

	s.recordEvent(ctx, submissionID, domain.ActionReject, actor.ID, reason, now)
	s.log.Info().Str("submission_id", submissionID).Str("actor", actor.Username).Msg("submission rejected")
	return nil
}

// Delete removes the submission entirely. The role gate enforces admin
// authority upstream; the re-check here keeps the engine safe even if a new
// call site forgets the gate.
func (s *moderationService) Delete(ctx context.Context, submissionID string, actor domain.Identity) error {
	if !actor.Role.Meets(domain.RoleAdmin) {
		return fmt.Errorf("delete %s: %w", submissionID, domain.ErrForbidden)
	}

	if err := s.submissions.Delete(ctx, submissionID); err != nil {
		return fmt.Errorf("delete %s: %w", submissionID, err)
	}

	s.recordEvent(ctx, submissionID, domain.ActionDelete, actor.ID, "", time.Now().UTC())
	s.log.Info().Str("submission_id", submissionID).Str("actor", actor.Username).Msg("submission deleted")
	return nil
}

// recordEvent appends to the audit trail. The transition already committed,
// so a failed audit insert is logged and swallowed.
func (s *moderationService) recordEvent(ctx context.Context, submissionID string, action domain.ReviewAction, actorID, reason string, ts time.Time) {
	event := &domain.ReviewEvent{
		SubmissionID: submissionID,
		Action:       action,
		ActorID:      actorID,
		Reason:       reason,
		Timestamp:    ts,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("submission_id", submissionID).Str("action", string(action)).Msg("failed to insert review event")
	}
}
