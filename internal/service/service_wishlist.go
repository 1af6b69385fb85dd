package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// wishlistService is the concrete implementation of WishlistService.
type wishlistService struct {
	wishlistRepository store.WishlistRepository
	productRepository  store.ProductRepository
	logger             *logger.Logger
}

// NewWishlistService constructs a WishlistService over the wishlist and
// product repositories.
func NewWishlistService(wishlistRepository store.WishlistRepository, productRepository store.ProductRepository, logger *logger.Logger) WishlistService {
	return &wishlistService{
		wishlistRepository: wishlistRepository,
		productRepository:  productRepository,
		logger:             logger,
	}
}

func (w *wishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	items, err := w.wishlistRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("wishlist listing failed")
		return nil, fmt.Errorf("wishlist listing failed: %w", err)
	}

	return items, nil
}

// Add resolves the product and snapshots its attributes into the wishlist
// entry so later catalog edits do not rewrite what the user saved.
func (w *wishlistService) Add(ctx context.Context, userID, productID string) (models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.WishlistItem{}, store.ErrUserNotFound
	}

	product, err := w.productRepository.FindByID(ctx, productID)
	if err != nil {
		log.Err(err).Str("productID", productID).Msg("product lookup for wishlist failed")
		return models.WishlistItem{}, fmt.Errorf("product lookup for wishlist failed: %w", err)
	}

	item := models.WishlistItem{
		UserID:    userOID,
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     product.Image,
		EcoScore:  product.EcoScore,
	}

	added, err := w.wishlistRepository.Add(ctx, item)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyInWishlist) {
			return models.WishlistItem{}, err
		}
		log.Err(err).Str("productID", productID).Msg("wishlist insert failed")
		return models.WishlistItem{}, fmt.Errorf("wishlist insert failed: %w", err)
	}

	return added, nil
}

func (w *wishlistService) Remove(ctx context.Context, userID, productID string) error {
	log := logger.FromContext(ctx)

	if err := w.wishlistRepository.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, store.ErrWishlistItemNotFound) {
			return err
		}
		log.Err(err).Str("productID", productID).Msg("wishlist removal failed")
		return fmt.Errorf("wishlist removal failed: %w", err)
	}

	return nil
}
