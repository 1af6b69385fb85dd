package service

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
)

// profileService is the concrete implementation of ProfileService.
// Account deletion cascades over the user-owned collections, so it holds
// every repository touched by the cascade.
type profileService struct {
	userRepository     store.UserRepository
	wishlistRepository store.WishlistRepository
	cartRepository     store.CartRepository
	feedbackRepository store.FeedbackRepository
	logger             *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repositories.
func NewProfileService(
	userRepository store.UserRepository,
	wishlistRepository store.WishlistRepository,
	cartRepository store.CartRepository,
	feedbackRepository store.FeedbackRepository,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository:     userRepository,
		wishlistRepository: wishlistRepository,
		cartRepository:     cartRepository,
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

func (p *profileService) Get(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

func (p *profileService) Update(ctx context.Context, userID, fullname, address, phoneNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	if fullname == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := p.userRepository.UpdateProfile(ctx, userID, fullname, address, phoneNumber)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the account, then sweeps the user's wishlist, cart, and
// feedback. A failed sweep is logged and does not undo the deletion: the
// account is gone either way, and orphaned documents are unreachable
// through the API.
func (p *profileService) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := p.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if err := p.wishlistRepository.RemoveAllForUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("wishlist sweep failed after account deletion")
	}
	if err := p.cartRepository.Clear(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("cart sweep failed after account deletion")
	}
	if err := p.feedbackRepository.RemoveAllForUser(ctx, userID); err != nil {
		log.Err(err).Str("userID", userID).Msg("feedback sweep failed after account deletion")
	}

	return nil
}
