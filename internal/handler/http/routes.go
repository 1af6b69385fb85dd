package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.serverCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.serverCfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.serverCfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/health", h.health)

		r.Post("/signup", h.signup)
		r.Get("/verify", h.verify)
		r.Post("/resend-verification", h.resendVerification)
		r.Post("/login", h.login)

		r.Get("/api/search", h.search)
		r.Get("/api/alternatives/{category}/{productID}", h.alternatives)
		r.Post("/api/feedback", h.submitFeedback)
	})

	// routes behind the JWT gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/profile", h.profile)
		r.Put("/api/edit", h.editProfile)
		r.Delete("/api/delete", h.deleteAccount)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{productID}", h.getProduct)
		r.Get("/api/bestproduct/{category}", h.bestProduct)

		r.Get("/api/wishlist", h.listWishlist)
		r.Post("/api/wishlist", h.addToWishlist)
		r.Delete("/api/wishlist/{productID}", h.removeFromWishlist)

		r.Get("/api/cart", h.listCart)
		r.Post("/api/cart", h.addToCart)
		r.Patch("/api/cart/{itemID}", h.updateCartItem)
		r.Delete("/api/cart/{itemID}", h.removeCartItem)

		r.Post("/api/order", h.placeOrder)
		r.Get("/api/order-history", h.orderHistory)
		r.Get("/api/order/{orderID}", h.getOrder)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	return router
}
