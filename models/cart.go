package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents one product line in a user's shopping cart.
// Product attributes are denormalised into the document so the cart
// can be rendered without a second catalog lookup.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"-"`
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Brand     string             `bson:"brand" json:"brand"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	EcoScore  int                `bson:"eco_score" json:"ecoScore"`

	// Quantity is always at least 1. Adding a product that is already in
	// the cart increments this value instead of creating a new line.
	Quantity int `bson:"quantity" json:"quantity"`

	AddedAt time.Time `bson:"added_at" json:"addedAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the CartItem model.
func (c CartItem) CollectionName() string {
	return "cart"
}
