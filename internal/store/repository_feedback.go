package store

import (
	"context"
	"fmt"
	"time"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// feedbackRepository is the MongoDB-backed implementation of
// [FeedbackRepository] over the "feedback" collection.
type feedbackRepository struct {
	logger   *logger.Logger
	feedback *mongo.Collection
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		feedback: db.Collection(models.Feedback{}.CollectionName()),
		logger:   logger,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now().UTC()

	if _, err := r.feedback.InsertOne(ctx, feedback); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.Create").Msg("error: insert failed")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return feedback, nil
}

func (r *feedbackRepository) RemoveAllForUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if _, err := r.feedback.DeleteMany(ctx, bson.M{"user_id": oid}); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.RemoveAllForUser").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
