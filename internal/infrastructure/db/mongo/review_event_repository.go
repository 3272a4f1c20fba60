package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

const collectionReviewEvents = "review_events"

// ReviewEventRepository persists the moderation audit trail.
type ReviewEventRepository struct {
	col *mongo.Collection
}

func NewReviewEventRepository(db *mongo.Database) ports.ReviewEventRepository {
	return &ReviewEventRepository{col: db.Collection(collectionReviewEvents)}
}

// Insert appends one audit record. Records are never updated or deleted.
func (r *ReviewEventRepository) Insert(ctx context.Context, event *domain.ReviewEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"submission_id": event.SubmissionID,
		"action":        string(event.Action),
		"actor_id":      event.ActorID,
		"timestamp":     event.Timestamp.UTC(),
		"recorded_at":   time.Now().UTC(),
	}
	if event.Reason != "" {
		doc["reason"] = event.Reason
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
