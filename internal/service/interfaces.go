package service

//go:generate mockgen -destination=../mock/mailer_mock.go -package=mock github.com/eco-conscious/backend/internal/service Mailer

import (
	"context"

	"github.com/eco-conscious/backend/models"
)

// AuthService covers account creation, email verification, and the JWT
// token lifecycle.
type AuthService interface {
	// Signup creates an unverified account from user (Password holds the
	// plain-text password) and dispatches the verification email. A mail
	// delivery failure is logged but does not fail the signup.
	Signup(ctx context.Context, user models.User) (models.User, error)

	// Verify redeems an emailed verification token and marks the referenced
	// account verified. Redeeming a token for an already-verified account
	// succeeds. Returns ErrTokenIsExpired for an expired link and
	// ErrInvalidVerificationToken for anything else unredeemable.
	Verify(ctx context.Context, tokenString string) (models.User, error)

	// ResendVerification re-issues the verification email for the account
	// with the given address. Unknown and already-verified addresses are
	// silently ignored so callers cannot probe for accounts.
	ResendVerification(ctx context.Context, email string) error

	// Login authenticates by username or email plus password. Every failure
	// mode collapses into ErrInvalidCredentials.
	Login(ctx context.Context, login, password string) (models.User, error)

	// CreateSessionToken issues the signed session JWT for a logged-in user.
	CreateSessionToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a session token string. Expired tokens are
	// reported as ErrTokenIsExpired, everything else unredeemable as
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService covers reading and mutating the authenticated user's
// account.
type ProfileService interface {
	// Get returns the user's account record.
	Get(ctx context.Context, userID string) (models.User, error)

	// Update replaces the mutable profile fields (fullname, address, phone
	// number) and returns the updated record. Username and email are
	// immutable after signup.
	Update(ctx context.Context, userID, fullname, address, phoneNumber string) (models.User, error)

	// Delete removes the account together with its wishlist, cart, and
	// feedback link. Placed orders are retained for record keeping.
	Delete(ctx context.Context, userID string) error
}

// CatalogService covers product listing, lookup, search, and the
// eco-recommendation queries.
type CatalogService interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, productID string) (models.Product, error)

	// Search matches the query case-insensitively against product name,
	// brand, and category. An empty query is ErrInvalidDataProvided.
	Search(ctx context.Context, query string) ([]models.Product, error)

	// Alternatives returns greener same-category products excluding the
	// given one, best eco score first. An empty slice means the product is
	// already the most eco-friendly choice in its category.
	Alternatives(ctx context.Context, category, productID string) ([]models.Product, error)

	// BestProduct returns the highest eco-score product in the category.
	BestProduct(ctx context.Context, category string) (models.Product, error)
}

// WishlistService covers the authenticated user's saved products.
type WishlistService interface {
	List(ctx context.Context, userID string) ([]models.WishlistItem, error)

	// Add snapshots the product into the user's wishlist. Saving a product
	// twice returns store.ErrAlreadyInWishlist.
	Add(ctx context.Context, userID, productID string) (models.WishlistItem, error)

	Remove(ctx context.Context, userID, productID string) error
}

// CartService covers the authenticated user's shopping cart.
type CartService interface {
	List(ctx context.Context, userID string) ([]models.CartItem, error)

	// Add puts quantity units of the product into the cart, incrementing
	// the existing line when the product is already present. A quantity
	// below one defaults to one.
	Add(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error)

	// UpdateQuantity sets the quantity of an existing cart line. Quantities
	// below one are ErrInvalidDataProvided.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error)

	Remove(ctx context.Context, userID, itemID string) error
}

// OrderService covers order placement and history.
type OrderService interface {
	// Place creates an order from the user's current cart, computes the
	// total server-side, and clears the cart. An empty cart is ErrEmptyCart.
	Place(ctx context.Context, userID, address string) (models.Order, error)

	// History returns the user's orders, newest first.
	History(ctx context.Context, userID string) ([]models.Order, error)

	// Get returns a single order owned by the user.
	Get(ctx context.Context, userID, orderID string) (models.Order, error)
}

// FeedbackService accepts feedback from visitors and customers alike.
type FeedbackService interface {
	Submit(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
}

// Mailer sends transactional email. Implemented by the SMTP mailer in
// internal/mail; mocked in tests.
type Mailer interface {
	// SendVerificationEmail delivers the account-verification message
	// containing verifyURL to the given address.
	SendVerificationEmail(ctx context.Context, to, fullname, verifyURL string) error
}
