package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem represents one saved product in a user's wishlist.
// Product attributes are denormalised into the document so the wishlist
// can be rendered without a second catalog lookup.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"-"`
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Brand     string             `bson:"brand" json:"brand"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	EcoScore  int                `bson:"eco_score" json:"ecoScore"`
	AddedAt   time.Time          `bson:"added_at" json:"addedAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the WishlistItem model.
func (w WishlistItem) CollectionName() string {
	return "wishlist"
}
