package service

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
)

// feedbackService is the concrete implementation of FeedbackService.
type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	logger             *logger.Logger
}

// NewFeedbackService constructs a FeedbackService over the feedback
// repository.
func NewFeedbackService(feedbackRepository store.FeedbackRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

func (f *feedbackService) Submit(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	if feedback.Message == "" {
		return models.Feedback{}, ErrInvalidDataProvided
	}

	created, err := f.feedbackRepository.Create(ctx, feedback)
	if err != nil {
		log.Err(err).Msg("feedback creation failed")
		return models.Feedback{}, fmt.Errorf("feedback creation failed: %w", err)
	}

	return created, nil
}
