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

// cartService is the concrete implementation of CartService.
type cartService struct {
	cartRepository    store.CartRepository
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewCartService constructs a CartService over the cart and product
// repositories.
func NewCartService(cartRepository store.CartRepository, productRepository store.ProductRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
		logger:            logger,
	}
}

func (c *cartService) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	items, err := c.cartRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("cart listing failed")
		return nil, fmt.Errorf("cart listing failed: %w", err)
	}

	return items, nil
}

// Add puts quantity units of the product into the cart. Re-adding a
// product increments the existing line instead of duplicating it.
func (c *cartService) Add(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.CartItem{}, store.ErrUserNotFound
	}

	if quantity < 1 {
		quantity = 1
	}

	product, err := c.productRepository.FindByID(ctx, productID)
	if err != nil {
		log.Err(err).Str("productID", productID).Msg("product lookup for cart failed")
		return models.CartItem{}, fmt.Errorf("product lookup for cart failed: %w", err)
	}

	item := models.CartItem{
		UserID:    userOID,
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     product.Image,
		EcoScore:  product.EcoScore,
		Quantity:  quantity,
	}

	upserted, err := c.cartRepository.Upsert(ctx, item)
	if err != nil {
		log.Err(err).Str("productID", productID).Msg("cart upsert failed")
		return models.CartItem{}, fmt.Errorf("cart upsert failed: %w", err)
	}

	return upserted, nil
}

func (c *cartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	if quantity < 1 {
		return models.CartItem{}, ErrInvalidDataProvided
	}

	updated, err := c.cartRepository.UpdateQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		if errors.Is(err, store.ErrCartItemNotFound) {
			return models.CartItem{}, err
		}
		log.Err(err).Str("itemID", itemID).Msg("cart quantity update failed")
		return models.CartItem{}, fmt.Errorf("cart quantity update failed: %w", err)
	}

	return updated, nil
}

func (c *cartService) Remove(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	if err := c.cartRepository.Remove(ctx, userID, itemID); err != nil {
		if errors.Is(err, store.ErrCartItemNotFound) {
			return err
		}
		log.Err(err).Str("itemID", itemID).Msg("cart removal failed")
		return fmt.Errorf("cart removal failed: %w", err)
	}

	return nil
}
