package domain

import (
	"errors"
	"time"
)

// SubmissionStatus represents the review state of a travel note submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// validTransitions defines the allowed review state machine. Approved and
// rejected are terminal; a submission never re-enters pending.
var validTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrSubmissionNotFound = errors.New("submission not found")
var ErrValidation = errors.New("validation failed")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("unauthenticated")

// IsValid reports whether s is one of the known review states.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is legal.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Submission is the core aggregate: a user-authored travel note under review.
// Status, RejectionReason, ReviewedBy and UpdatedAt are written only by the
// moderation engine.
type Submission struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	Title           string           `json:"title" bson:"title"`
	Content         string           `json:"content" bson:"content"`
	AuthorName      string           `json:"author_name,omitempty" bson:"author_name,omitempty"`
	Status          SubmissionStatus `json:"status" bson:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	ReviewedBy      string           `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" bson:"updated_at"`
}

// ReviewAction names a moderation operation requested against a submission.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
	ActionDelete  ReviewAction = "delete"
)

// ReviewEvent records a single applied moderation action for audit purposes.
type ReviewEvent struct {
	SubmissionID string       `json:"submission_id" bson:"submission_id"`
	Action       ReviewAction `json:"action" bson:"action"`
	ActorID      string       `json:"actor_id" bson:"actor_id"`
	Reason       string       `json:"reason,omitempty" bson:"reason,omitempty"`
	Timestamp    time.Time    `json:"timestamp" bson:"timestamp"`
}
