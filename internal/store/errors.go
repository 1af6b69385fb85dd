package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same username or email
	// already exists (unique index violation).
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a catalog lookup targets a
	// product that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrAlreadyInWishlist is returned when a product is added to a
	// wishlist that already contains it.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")

	// ErrWishlistItemNotFound is returned when a wishlist removal targets
	// a product the user never saved.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")

	// ErrCartItemNotFound is returned when a cart mutation targets a line
	// that does not exist or belongs to another user.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrOrderNotFound is returned when an order lookup targets an order
	// that does not exist or belongs to another user.
	ErrOrderNotFound = errors.New("order not found")
)
