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

// orderRepository is the MongoDB-backed implementation of [OrderRepository]
// over the "orders" collection.
type orderRepository struct {
	logger *logger.Logger
	orders *mongo.Collection
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		orders: db.Collection(models.Order{}.CollectionName()),
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	order.ID = primitive.NewObjectID()
	order.PlacedAt = time.Now().UTC()

	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		log.Err(err).Str("func", "*orderRepository.Create").Msg("error: insert failed")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "placed_at", Value: -1}})
	cursor, err := r.orders.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListByUser").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		log.Err(err).Str("func", "*orderRepository.ListByUser").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return orders, nil
}

// FindByID looks up a single order scoped to its owner. Filtering on both
// _id and user_id makes another user's order indistinguishable from a
// missing one.
func (r *orderRepository) FindByID(ctx context.Context, userID, orderID string) (models.Order, error) {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	orderOID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}

	var found models.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": orderOID, "user_id": userOID}).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.Order{}, ErrOrderNotFound
		}
		log.Err(err).Str("func", "*orderRepository.FindByID").Msg("error: lookup failed")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
