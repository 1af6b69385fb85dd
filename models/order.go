package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order starts in [OrderStatusPlaced] and only moves
// forward through the fulfilment pipeline.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one purchased product line inside an order. The price is
// the unit price at the moment of purchase, not the current catalog price.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Brand     string             `bson:"brand" json:"brand"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	EcoScore  int                `bson:"eco_score" json:"ecoScore"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed order stored in the "orders" collection.
type Order struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// UserID is the owner of the order. Never exposed via JSON; callers
	// only ever see their own orders.
	UserID primitive.ObjectID `bson:"user_id" json:"-"`

	// OrderNumber is a human-facing unique reference (UUID) generated at
	// placement time, independent of the document identifier.
	OrderNumber string `bson:"order_number" json:"orderNumber"`

	Items []OrderItem `bson:"items" json:"items"`

	// Total is computed server-side from the item prices and quantities.
	// Client-supplied totals are ignored.
	Total float64 `bson:"total" json:"total"`

	Status   string    `bson:"status" json:"status"`
	Address  string    `bson:"address" json:"address"`
	PlacedAt time.Time `bson:"placed_at" json:"placedAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Order model.
func (o Order) CollectionName() string {
	return "orders"
}
