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

// wishlistRepository is the MongoDB-backed implementation of
// [WishlistRepository] over the "wishlist" collection.
type wishlistRepository struct {
	logger   *logger.Logger
	wishlist *mongo.Collection
}

// NewWishlistRepository constructs a [WishlistRepository] backed by the
// provided database connection and logger.
func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	logger.Debug().Msg("creating wishlist repository")
	return &wishlistRepository{
		wishlist: db.Collection(models.WishlistItem{}.CollectionName()),
		logger:   logger,
	}
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cursor, err := r.wishlist.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ListByUser").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	items := make([]models.WishlistItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ListByUser").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return items, nil
}

// Add inserts a wishlist entry. The unique index on (user_id, product_id)
// turns a duplicate save into [ErrAlreadyInWishlist].
func (r *wishlistRepository) Add(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	item.ID = primitive.NewObjectID()
	item.AddedAt = time.Now().UTC()

	if _, err := r.wishlist.InsertOne(ctx, item); err != nil {
		if isDuplicateKey(err) {
			return models.WishlistItem{}, ErrAlreadyInWishlist
		}
		log.Err(err).Str("func", "*wishlistRepository.Add").Msg("error: insert failed")
		return models.WishlistItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrWishlistItemNotFound
	}
	productOID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ErrWishlistItemNotFound
	}

	res, err := r.wishlist.DeleteOne(ctx, bson.M{"user_id": userOID, "product_id": productOID})
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.Remove").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrWishlistItemNotFound
	}

	return nil
}

func (r *wishlistRepository) RemoveAllForUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if _, err := r.wishlist.DeleteMany(ctx, bson.M{"user_id": oid}); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.RemoveAllForUser").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
