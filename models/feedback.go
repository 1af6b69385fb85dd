package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback represents a feedback message stored in the "feedback"
// collection. Feedback is accepted from anonymous visitors, so UserID
// is optional.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id,omitempty" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Feedback model.
func (f Feedback) CollectionName() string {
	return "feedback"
}
