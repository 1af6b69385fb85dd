package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository is the MongoDB-backed implementation of
// [ProductRepository] over the "products" collection.
type productRepository struct {
	logger   *logger.Logger
	products *mongo.Collection
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		products: db.Collection(models.Product{}.CollectionName()),
		logger:   logger,
	}
}

func (r *productRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.products.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.List").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		log.Err(err).Str("func", "*productRepository.List").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrProductNotFound
	}

	var found models.Product
	if err := r.products.FindOne(ctx, bson.M{"_id": oid}).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindByID").Msg("error: lookup failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Search performs a case-insensitive substring match over name, brand, and
// category.
func (r *productRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"brand": pattern},
		bson.M{"category": pattern},
	}}

	cursor, err := r.products.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.Search").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		log.Err(err).Str("func", "*productRepository.Search").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return products, nil
}

// FindAlternatives returns same-category products excluding excludeID,
// best eco score first. An unknown excludeID simply excludes nothing.
func (r *productRepository) FindAlternatives(ctx context.Context, category, excludeID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{"category": category}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}

	opts := options.Find().SetSort(bson.D{{Key: "eco_score", Value: -1}})
	cursor, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindAlternatives").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		log.Err(err).Str("func", "*productRepository.FindAlternatives").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return products, nil
}

func (r *productRepository) BestInCategory(ctx context.Context, category string) (models.Product, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetSort(bson.D{{Key: "eco_score", Value: -1}})

	var best models.Product
	if err := r.products.FindOne(ctx, bson.M{"category": category}, opts).Decode(&best); err != nil {
		if isNoDocuments(err) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.BestInCategory").Msg("error: lookup failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return best, nil
}
