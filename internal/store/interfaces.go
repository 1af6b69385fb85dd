package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/eco-conscious/backend/models"
)

// UserRepository is the data-access contract for customer accounts.
//
// CreateUser relies on the unique indexes on username and email: the insert
// itself is the atomic check-and-insert, so two concurrent signups with the
// same identity can never both succeed.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned ID. Returns ErrUserAlreadyExists when the username
	// or email collides with an existing account.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindByUsernameOrEmail returns the first user matching either
	// identifier. Returns ErrUserNotFound when no account matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)

	// FindByLogin returns the user whose username or email equals login.
	// Returns ErrUserNotFound when no account matches.
	FindByLogin(ctx context.Context, login string) (models.User, error)

	// FindByEmail returns the user with the given email address.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given hex document identifier.
	FindByID(ctx context.Context, id string) (models.User, error)

	// MarkVerified sets is_verified=true on the given user. Marking an
	// already-verified user is a no-op, not an error.
	MarkVerified(ctx context.Context, id string) error

	// UpdateProfile replaces the mutable profile fields of the user and
	// returns the updated document.
	UpdateProfile(ctx context.Context, id string, fullname, address, phoneNumber string) (models.User, error)

	// DeleteUser removes the user document.
	DeleteUser(ctx context.Context, id string) error
}

// ProductRepository is the data-access contract for the catalog.
type ProductRepository interface {
	// List returns all products, optionally filtered by category when
	// category is non-empty.
	List(ctx context.Context, category string) ([]models.Product, error)

	// FindByID returns the product with the given hex document identifier.
	// Returns ErrProductNotFound when unknown.
	FindByID(ctx context.Context, id string) (models.Product, error)

	// Search returns products whose name, brand, or category matches the
	// query case-insensitively.
	Search(ctx context.Context, query string) ([]models.Product, error)

	// FindAlternatives returns products in the given category excluding
	// the one identified by excludeID, ordered by descending eco score.
	// An empty result is not an error.
	FindAlternatives(ctx context.Context, category, excludeID string) ([]models.Product, error)

	// BestInCategory returns the product with the highest eco score in
	// the category. Returns ErrProductNotFound for an empty category.
	BestInCategory(ctx context.Context, category string) (models.Product, error)
}

// WishlistRepository is the data-access contract for per-user wishlists.
type WishlistRepository interface {
	// ListByUser returns the user's wishlist, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error)

	// Add inserts a wishlist entry. Returns ErrAlreadyInWishlist when the
	// product is already saved (unique index on user_id+product_id).
	Add(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error)

	// Remove deletes the entry for the given product. Returns
	// ErrWishlistItemNotFound when nothing was deleted.
	Remove(ctx context.Context, userID, productID string) error

	// RemoveAllForUser deletes every wishlist entry of the user.
	RemoveAllForUser(ctx context.Context, userID string) error
}

// CartRepository is the data-access contract for per-user shopping carts.
type CartRepository interface {
	// ListByUser returns the user's cart lines, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)

	// Upsert inserts a cart line, or increments the quantity of the
	// existing line for the same product.
	Upsert(ctx context.Context, item models.CartItem) (models.CartItem, error)

	// UpdateQuantity sets the quantity of an existing cart line.
	// Returns ErrCartItemNotFound when the line does not belong to the user.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error)

	// Remove deletes a single cart line. Returns ErrCartItemNotFound when
	// the line does not belong to the user.
	Remove(ctx context.Context, userID, itemID string) error

	// Clear deletes every cart line of the user.
	Clear(ctx context.Context, userID string) error
}

// OrderRepository is the data-access contract for placed orders.
type OrderRepository interface {
	// Create persists a new order and returns it with the
	// server-assigned ID.
	Create(ctx context.Context, order models.Order) (models.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)

	// FindByID returns a single order owned by the user.
	// Returns ErrOrderNotFound otherwise.
	FindByID(ctx context.Context, userID, orderID string) (models.Order, error)
}

// FeedbackRepository is the data-access contract for visitor feedback.
type FeedbackRepository interface {
	// Create persists a feedback message.
	Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error)

	// RemoveAllForUser deletes the feedback linked to a user account.
	RemoveAllForUser(ctx context.Context, userID string) error
}
