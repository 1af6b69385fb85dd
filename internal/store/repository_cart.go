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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cartRepository is the MongoDB-backed implementation of [CartRepository]
// over the "cart" collection.
type cartRepository struct {
	logger *logger.Logger
	cart   *mongo.Collection
}

// NewCartRepository constructs a [CartRepository] backed by the provided
// database connection and logger.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		cart:   db.Collection(models.CartItem{}.CollectionName()),
		logger: logger,
	}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cursor, err := r.cart.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.ListByUser").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		log.Err(err).Str("func", "*cartRepository.ListByUser").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return items, nil
}

// Upsert adds a cart line, or bumps the quantity of the existing line for
// the same product. The single findAndModify keeps concurrent re-adds of
// the same product from creating two lines: the unique index on
// (user_id, product_id) backs the upsert.
func (r *cartRepository) Upsert(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{"user_id": item.UserID, "product_id": item.ProductID}
	update := bson.M{
		"$inc": bson.M{"quantity": item.Quantity},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"name":      item.Name,
			"brand":     item.Brand,
			"price":     item.Price,
			"image":     item.Image,
			"eco_score": item.EcoScore,
			"added_at":  time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var upserted models.CartItem
	if err := r.cart.FindOneAndUpdate(ctx, filter, update, opts).Decode(&upserted); err != nil {
		log.Err(err).Str("func", "*cartRepository.Upsert").Msg("error: upsert failed")
		return models.CartItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return upserted, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.CartItem{}, ErrCartItemNotFound
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return models.CartItem{}, ErrCartItemNotFound
	}

	update := bson.M{"$set": bson.M{"quantity": quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CartItem
	filter := bson.M{"_id": itemOID, "user_id": userOID}
	if err := r.cart.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if isNoDocuments(err) {
			return models.CartItem{}, ErrCartItemNotFound
		}
		log.Err(err).Str("func", "*cartRepository.UpdateQuantity").Msg("error: update failed")
		return models.CartItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrCartItemNotFound
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return ErrCartItemNotFound
	}

	res, err := r.cart.DeleteOne(ctx, bson.M{"_id": itemOID, "user_id": userOID})
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.Remove").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if _, err := r.cart.DeleteMany(ctx, bson.M{"user_id": oid}); err != nil {
		log.Err(err).Str("func", "*cartRepository.Clear").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
