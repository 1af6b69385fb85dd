package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/eco-conscious/backend/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the settings for constructing a [Client].
type Config struct {
	// BaseURL is the root of the API, e.g. "http://localhost:3000".
	// A bare host:port is accepted and defaults to the http scheme.
	BaseURL string

	// Timeout bounds every request issued by the client.
	Timeout time.Duration
}

// Client is a thread-safe client for the Eco-Conscious REST API. The bearer
// token captured at login (or set explicitly) is attached to all subsequent
// authenticated requests.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// New constructs a [Client] from cfg. Returns an error if cfg.BaseURL is
// empty or cannot be parsed as a valid URL.
func New(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup registers a new account via POST /signup. The account starts
// unverified; the server sends the verification mail out of band.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var result models.SignupResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	return result, nil
}

// Verify redeems an emailed verification token via GET /verify.
func (c *Client) Verify(ctx context.Context, token string) (models.VerifyResponse, error) {
	var result models.VerifyResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		SetResult(&result).
		Get("/verify")
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.VerifyResponse{}, err
	}

	return result, nil
}

// ResendVerification asks the server to re-send the verification mail via
// POST /resend-verification. The response is intentionally generic and does
// not reveal whether the address is registered.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResendVerificationRequest{Email: email}).
		Post("/resend-verification")
	if err != nil {
		return fmt.Errorf("resend verification request: %w", err)
	}

	return mapAPIError(resp)
}

// Login authenticates via POST /login. On success the bearer token from the
// response is stored via [Client.SetToken] and returned.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetToken(result.Token)
	return result, nil
}

// Profile fetches the authenticated user's profile via GET /api/profile.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	resp, err := c.authedRequest(ctx).Get("/api/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

// EditProfile updates the profile via PUT /api/edit and returns the updated
// user.
func (c *Client) EditProfile(ctx context.Context, req models.EditProfileRequest) (models.User, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/edit")
	if err != nil {
		return models.User{}, fmt.Errorf("edit profile request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode edit profile response: %w", err)
	}
	return user, nil
}

// DeleteAccount deletes the authenticated account and its wishlist, cart and
// feedback via DELETE /api/delete. The stored token is cleared on success.
func (c *Client) DeleteAccount(ctx context.Context) error {
	resp, err := c.authedRequest(ctx).Delete("/api/delete")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// Products lists catalog products via GET /api/products, optionally filtered
// by category.
func (c *Client) Products(ctx context.Context, category string) ([]models.Product, error) {
	req := c.authedRequest(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("products request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}
	return products, nil
}

// Product fetches a single product via GET /api/products/{id}.
func (c *Client) Product(ctx context.Context, productID string) (models.Product, error) {
	resp, err := c.authedRequest(ctx).Get("/api/products/" + url.PathEscape(productID))
	if err != nil {
		return models.Product{}, fmt.Errorf("product request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product response: %w", err)
	}
	return product, nil
}

// Search performs a catalog search via GET /api/search. The endpoint is
// public; no token is required.
func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return products, nil
}

// Alternatives lists greener same-category alternatives to a product via
// GET /api/alternatives/{category}/{id}. An empty slice means the product
// already leads its category.
func (c *Client) Alternatives(ctx context.Context, category, productID string) ([]models.Product, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/alternatives/" + url.PathEscape(category) + "/" + url.PathEscape(productID))
	if err != nil {
		return nil, fmt.Errorf("alternatives request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode alternatives response: %w", err)
	}
	return products, nil
}

// BestProduct fetches the highest eco-scored product of a category via
// GET /api/bestproduct/{category}.
func (c *Client) BestProduct(ctx context.Context, category string) (models.Product, error) {
	resp, err := c.authedRequest(ctx).Get("/api/bestproduct/" + url.PathEscape(category))
	if err != nil {
		return models.Product{}, fmt.Errorf("best product request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.Product{}, fmt.Errorf("decode best product response: %w", err)
	}
	return product, nil
}

// Wishlist lists the saved products via GET /api/wishlist.
func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	resp, err := c.authedRequest(ctx).Get("/api/wishlist")
	if err != nil {
		return nil, fmt.Errorf("wishlist request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode wishlist response: %w", err)
	}
	return items, nil
}

// AddToWishlist saves a product via POST /api/wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (models.WishlistItem, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.WishlistRequest{ProductID: productID}).
		Post("/api/wishlist")
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("add to wishlist request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.WishlistItem{}, err
	}

	var item models.WishlistItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.WishlistItem{}, fmt.Errorf("decode wishlist item response: %w", err)
	}
	return item, nil
}

// RemoveFromWishlist removes a saved product via DELETE /api/wishlist/{id}.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	resp, err := c.authedRequest(ctx).Delete("/api/wishlist/" + url.PathEscape(productID))
	if err != nil {
		return fmt.Errorf("remove from wishlist request: %w", err)
	}

	return mapAPIError(resp)
}

// Cart lists the cart lines via GET /api/cart.
func (c *Client) Cart(ctx context.Context) ([]models.CartItem, error) {
	resp, err := c.authedRequest(ctx).Get("/api/cart")
	if err != nil {
		return nil, fmt.Errorf("cart request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	return items, nil
}

// AddToCart adds a product line via POST /api/cart. Adding a product that is
// already in the cart increments its quantity server-side.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (models.CartItem, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CartAddRequest{ProductID: productID, Quantity: quantity}).
		Post("/api/cart")
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add to cart request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.CartItem{}, fmt.Errorf("decode cart item response: %w", err)
	}
	return item, nil
}

// UpdateCartItem sets the quantity of a cart line via PATCH /api/cart/{id}.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (models.CartItem, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CartUpdateRequest{Quantity: quantity}).
		Patch("/api/cart/" + url.PathEscape(itemID))
	if err != nil {
		return models.CartItem{}, fmt.Errorf("update cart item request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.CartItem{}, fmt.Errorf("decode cart item response: %w", err)
	}
	return item, nil
}

// RemoveCartItem removes a cart line via DELETE /api/cart/{id}.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	resp, err := c.authedRequest(ctx).Delete("/api/cart/" + url.PathEscape(itemID))
	if err != nil {
		return fmt.Errorf("remove cart item request: %w", err)
	}

	return mapAPIError(resp)
}

// PlaceOrder converts the cart into an order via POST /api/order. An empty
// address ships to the profile address chosen at checkout by the caller.
func (c *Client) PlaceOrder(ctx context.Context, address string) (models.Order, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.OrderRequest{Address: address}).
		Post("/api/order")
	if err != nil {
		return models.Order{}, fmt.Errorf("place order request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = json.Unmarshal(resp.Body(), &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return order, nil
}

// OrderHistory lists the caller's orders via GET /api/order-history, newest
// first.
func (c *Client) OrderHistory(ctx context.Context) ([]models.Order, error) {
	resp, err := c.authedRequest(ctx).Get("/api/order-history")
	if err != nil {
		return nil, fmt.Errorf("order history request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err = json.Unmarshal(resp.Body(), &orders); err != nil {
		return nil, fmt.Errorf("decode order history response: %w", err)
	}
	return orders, nil
}

// Order fetches a single order via GET /api/order/{id}.
func (c *Client) Order(ctx context.Context, orderID string) (models.Order, error) {
	resp, err := c.authedRequest(ctx).Get("/api/order/" + url.PathEscape(orderID))
	if err != nil {
		return models.Order{}, fmt.Errorf("order request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = json.Unmarshal(resp.Body(), &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return order, nil
}

// SubmitFeedback sends feedback via POST /api/feedback. The endpoint is
// public, but a stored token links the feedback to the account.
func (c *Client) SubmitFeedback(ctx context.Context, req models.FeedbackRequest) (models.Feedback, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/feedback")
	if err != nil {
		return models.Feedback{}, fmt.Errorf("feedback request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Feedback{}, err
	}

	var feedback models.Feedback
	if err = json.Unmarshal(resp.Body(), &feedback); err != nil {
		return models.Feedback{}, fmt.Errorf("decode feedback response: %w", err)
	}
	return feedback, nil
}

// Health reports the server's health via GET /health.
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return result, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
