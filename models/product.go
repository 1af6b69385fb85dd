package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog item stored in the "products" collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand" json:"brand"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`

	// EcoScore rates the environmental friendliness of the product
	// on a 0-100 scale. Recommendation endpoints rank by this value.
	EcoScore int `bson:"eco_score" json:"ecoScore"`

	InStock   bool      `bson:"in_stock" json:"inStock"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Product model.
func (p Product) CollectionName() string {
	return "products"
}
