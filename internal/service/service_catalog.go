package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
)

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewCatalogService constructs a CatalogService over the product repository.
func NewCatalogService(productRepository store.ProductRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (c *catalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := c.productRepository.List(ctx, category)
	if err != nil {
		log.Err(err).Str("category", category).Msg("product listing failed")
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

func (c *catalogService) Get(ctx context.Context, productID string) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := c.productRepository.FindByID(ctx, productID)
	if err != nil {
		log.Err(err).Str("productID", productID).Msg("product lookup failed")
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

func (c *catalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidDataProvided
	}

	products, err := c.productRepository.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("product search failed")
		return nil, fmt.Errorf("product search failed: %w", err)
	}

	return products, nil
}

// Alternatives returns greener options in the same category. An empty
// result is a valid answer: the product already leads its category.
func (c *catalogService) Alternatives(ctx context.Context, category, productID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	if category == "" {
		return nil, ErrInvalidDataProvided
	}

	products, err := c.productRepository.FindAlternatives(ctx, category, productID)
	if err != nil {
		log.Err(err).Str("category", category).Msg("alternatives lookup failed")
		return nil, fmt.Errorf("alternatives lookup failed: %w", err)
	}

	return products, nil
}

func (c *catalogService) BestProduct(ctx context.Context, category string) (models.Product, error) {
	log := logger.FromContext(ctx)

	if category == "" {
		return models.Product{}, ErrInvalidDataProvided
	}

	best, err := c.productRepository.BestInCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("category", category).Msg("best product lookup failed")
		return models.Product{}, fmt.Errorf("best product lookup failed: %w", err)
	}

	return best, nil
}
