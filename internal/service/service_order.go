package service

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	orderRepository store.OrderRepository
	cartRepository  store.CartRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService over the order and cart
// repositories.
func NewOrderService(orderRepository store.OrderRepository, cartRepository store.CartRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		logger:          logger,
	}
}

// Place turns the user's current cart into an order.
//
// The total is computed here from the snapshotted unit prices and
// quantities; whatever total a client might claim is never consulted. The
// cart is cleared after the order persists: a failed clear is logged and
// leaves the order standing.
func (o *orderService) Place(ctx context.Context, userID, address string) (models.Order, error) {
	log := logger.FromContext(ctx)

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.Order{}, store.ErrUserNotFound
	}

	cart, err := o.cartRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("cart listing for order failed")
		return models.Order{}, fmt.Errorf("cart listing for order failed: %w", err)
	}
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart))
	var total float64
	for _, line := range cart {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Price:     line.Price,
			Image:     line.Image,
			EcoScore:  line.EcoScore,
			Quantity:  line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	order := models.Order{
		UserID:      userOID,
		OrderNumber: uuid.NewString(),
		Items:       items,
		Total:       total,
		Status:      models.OrderStatusPlaced,
		Address:     address,
	}

	placed, err := o.orderRepository.Create(ctx, order)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("order creation failed")
		return models.Order{}, fmt.Errorf("order creation failed: %w", err)
	}

	if err := o.cartRepository.Clear(ctx, userID); err != nil {
		log.Err(err).Str("orderNumber", placed.OrderNumber).Msg("cart clear after order failed")
	}

	return placed, nil
}

func (o *orderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	orders, err := o.orderRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("order history listing failed")
		return nil, fmt.Errorf("order history listing failed: %w", err)
	}

	return orders, nil
}

func (o *orderService) Get(ctx context.Context, userID, orderID string) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := o.orderRepository.FindByID(ctx, userID, orderID)
	if err != nil {
		log.Err(err).Str("orderID", orderID).Msg("order lookup failed")
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}

	return order, nil
}
