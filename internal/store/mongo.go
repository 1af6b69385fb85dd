package store

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the MongoDB client and the application database handle.
// It is created once at startup and shared read-only by all repositories.
type DB struct {
	client   *mongo.Client
	database *mongo.Database

	logger *logger.Logger
}

// NewDB connects to MongoDB using cfg, verifies the connection with a ping,
// and creates the unique indexes the application relies on.
//
// The unique indexes on users.username and users.email are what makes user
// creation a single atomic check-and-insert: concurrent signups with the
// same identity race at the index, not in handler code.
//
// The supplied ctx bounds the connect, ping, and index builds; callers pass
// a context derived from the configured connect timeout.
func NewDB(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	logger.Info().Str("database", cfg.Database).Msg("connecting to MongoDB...")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB (%s): %w", ClassifyMongoError(err), err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	logger.Info().Msg("connected to MongoDB")

	return db, nil
}

// Collection returns a handle to the named collection in the application
// database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Ping verifies the database connection. Used by the health endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// ensureIndexes creates the indexes the repositories depend on. Index
// creation is idempotent, so running it on every startup is safe.
func (db *DB) ensureIndexes(ctx context.Context) error {
	users := db.Collection(models.User{}.CollectionName())
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	wishlist := db.Collection(models.WishlistItem{}.CollectionName())
	_, err = wishlist.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("wishlist index: %w", err)
	}

	cart := db.Collection(models.CartItem{}.CollectionName())
	_, err = cart.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cart index: %w", err)
	}

	products := db.Collection(models.Product{}.CollectionName())
	_, err = products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "eco_score", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("products index: %w", err)
	}

	orders := db.Collection(models.Order{}.CollectionName())
	_, err = orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "placed_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("orders index: %w", err)
	}

	return nil
}
