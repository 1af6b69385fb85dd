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

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account creation, lookup, verification, and profile mutation
// against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(models.User{}.CollectionName()),
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The insert is the single atomic check-and-insert: the unique indexes on
// username and email reject a concurrent duplicate at the storage layer.
//
// Error handling:
//   - duplicate key (11000) → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		if isDuplicateKey(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindByUsernameOrEmail retrieves the first user whose username or email
// matches the provided values. Callers compare the returned document's
// fields against their input to name the colliding field.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	if err := r.users.FindOne(ctx, filter).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByUsernameOrEmail").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindByLogin retrieves a user whose username or email equals login.
func (r *userRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	filter := bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": login},
	}}

	if err := r.users.FindOne(ctx, filter).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByLogin").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindByEmail retrieves a user by email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByEmail").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindByID retrieves a user by the hex form of its document identifier.
// A malformed identifier is reported as [ErrUserNotFound]: such an ID can
// never reference an existing document.
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	var found models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&found); err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// MarkVerified sets is_verified=true on the user. Verification state is
// idempotent: updating an already-verified user matches zero modified
// documents and still succeeds.
func (r *userRepository) MarkVerified(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_verified": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.MarkVerified").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateProfile replaces the mutable profile fields and returns the updated
// document. Username and email are immutable after signup.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, fullname, address, phoneNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"fullname":     fullname,
		"address":      address,
		"phone_number": phoneNumber,
		"updated_at":   time.Now().UTC(),
	}}

	var updated models.User
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, after).Decode(&updated); err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user document.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
