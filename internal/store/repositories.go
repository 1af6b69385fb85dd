package store

import (
	"github.com/eco-conscious/backend/internal/logger"
)

// Repositories aggregates every data-access implementation behind its
// interface, wired to a single shared [DB].
type Repositories struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	WishlistRepository WishlistRepository
	CartRepository     CartRepository
	OrderRepository    OrderRepository
	FeedbackRepository FeedbackRepository
}

// NewRepositories constructs all repositories on top of the shared database
// handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		WishlistRepository: NewWishlistRepository(db, logger),
		CartRepository:     NewCartRepository(db, logger),
		OrderRepository:    NewOrderRepository(db, logger),
		FeedbackRepository: NewFeedbackRepository(db, logger),
	}
}
