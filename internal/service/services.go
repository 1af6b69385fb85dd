package service

import (
	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
)

// Services aggregates every business-logic implementation behind its
// interface.
type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	CatalogService  CatalogService
	WishlistService WishlistService
	CartService     CartService
	OrderService    OrderService
	FeedbackService FeedbackService
}

// NewServices constructs all services on top of the shared repositories.
func NewServices(repos *store.Repositories, mailer Mailer, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, mailer, cfg.App, logger),
		ProfileService: NewProfileService(
			repos.UserRepository,
			repos.WishlistRepository,
			repos.CartRepository,
			repos.FeedbackRepository,
			logger,
		),
		CatalogService:  NewCatalogService(repos.ProductRepository, logger),
		WishlistService: NewWishlistService(repos.WishlistRepository, repos.ProductRepository, logger),
		CartService:     NewCartService(repos.CartRepository, repos.ProductRepository, logger),
		OrderService:    NewOrderService(repos.OrderRepository, repos.CartRepository, logger),
		FeedbackService: NewFeedbackService(repos.FeedbackRepository, logger),
	}
}
