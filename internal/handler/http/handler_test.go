package http

import (
	"context"
	"testing"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn             func(ctx context.Context, user models.User) (models.User, error)
	verifyFn             func(ctx context.Context, tokenString string) (models.User, error)
	resendVerificationFn func(ctx context.Context, email string) error
	loginFn              func(ctx context.Context, login, password string) (models.User, error)
	createSessionTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, user models.User) (models.User, error) {
	return m.signupFn(ctx, user)
}

func (m *mockAuthService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	return m.verifyFn(ctx, tokenString)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, email string) error {
	return m.resendVerificationFn(ctx, email)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	return m.loginFn(ctx, login, password)
}

func (m *mockAuthService) CreateSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createSessionTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	getFn    func(ctx context.Context, userID string) (models.User, error)
	updateFn func(ctx context.Context, userID, fullname, address, phoneNumber string) (models.User, error)
	deleteFn func(ctx context.Context, userID string) error
}

func (m *mockProfileService) Get(ctx context.Context, userID string) (models.User, error) {
	return m.getFn(ctx, userID)
}

func (m *mockProfileService) Update(ctx context.Context, userID, fullname, address, phoneNumber string) (models.User, error) {
	return m.updateFn(ctx, userID, fullname, address, phoneNumber)
}

func (m *mockProfileService) Delete(ctx context.Context, userID string) error {
	return m.deleteFn(ctx, userID)
}

type mockCatalogService struct {
	listFn         func(ctx context.Context, category string) ([]models.Product, error)
	getFn          func(ctx context.Context, productID string) (models.Product, error)
	searchFn       func(ctx context.Context, query string) ([]models.Product, error)
	alternativesFn func(ctx context.Context, category, productID string) ([]models.Product, error)
	bestProductFn  func(ctx context.Context, category string) (models.Product, error)
}

func (m *mockCatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	return m.listFn(ctx, category)
}

func (m *mockCatalogService) Get(ctx context.Context, productID string) (models.Product, error) {
	return m.getFn(ctx, productID)
}

func (m *mockCatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return m.searchFn(ctx, query)
}

func (m *mockCatalogService) Alternatives(ctx context.Context, category, productID string) ([]models.Product, error) {
	return m.alternativesFn(ctx, category, productID)
}

func (m *mockCatalogService) BestProduct(ctx context.Context, category string) (models.Product, error) {
	return m.bestProductFn(ctx, category)
}

type mockWishlistService struct {
	listFn   func(ctx context.Context, userID string) ([]models.WishlistItem, error)
	addFn    func(ctx context.Context, userID, productID string) (models.WishlistItem, error)
	removeFn func(ctx context.Context, userID, productID string) error
}

func (m *mockWishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return m.listFn(ctx, userID)
}

func (m *mockWishlistService) Add(ctx context.Context, userID, productID string) (models.WishlistItem, error) {
	return m.addFn(ctx, userID, productID)
}

func (m *mockWishlistService) Remove(ctx context.Context, userID, productID string) error {
	return m.removeFn(ctx, userID, productID)
}

type mockCartService struct {
	listFn           func(ctx context.Context, userID string) ([]models.CartItem, error)
	addFn            func(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error)
	updateQuantityFn func(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error)
	removeFn         func(ctx context.Context, userID, itemID string) error
}

func (m *mockCartService) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCartService) Add(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	return m.addFn(ctx, userID, productID, quantity)
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (models.CartItem, error) {
	return m.updateQuantityFn(ctx, userID, itemID, quantity)
}

func (m *mockCartService) Remove(ctx context.Context, userID, itemID string) error {
	return m.removeFn(ctx, userID, itemID)
}

type mockOrderService struct {
	placeFn   func(ctx context.Context, userID, address string) (models.Order, error)
	historyFn func(ctx context.Context, userID string) ([]models.Order, error)
	getFn     func(ctx context.Context, userID, orderID string) (models.Order, error)
}

func (m *mockOrderService) Place(ctx context.Context, userID, address string) (models.Order, error) {
	return m.placeFn(ctx, userID, address)
}

func (m *mockOrderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	return m.historyFn(ctx, userID)
}

func (m *mockOrderService) Get(ctx context.Context, userID, orderID string) (models.Order, error) {
	return m.getFn(ctx, userID, orderID)
}

type mockFeedbackService struct {
	submitFn func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
}

func (m *mockFeedbackService) Submit(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	return m.submitFn(ctx, feedback)
}

// mockPinger implements DatabasePinger.
type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{Version: "test"},
		Server: config.Server{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}

	return NewHandler(services, &mockPinger{}, cfg, logger.Nop())
}

// authedServices wires a ParseToken stub that accepts the token "valid" and
// resolves it to userID.
func authedServices(userID string) *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: userID}, nil
			},
		},
	}
}
