package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a customer account stored in the "users" collection.
// It contains identity attributes, profile data, and credential material.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the MongoDB document identifier of the user.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Username is the unique login identifier chosen at signup.
	// Uniqueness is enforced by a unique index on the collection.
	Username string `bson:"username" json:"username"`

	// Fullname is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Fullname string `bson:"fullname" json:"fullname"`

	// Email is the unique email address of the user. It is the target of
	// the verification mail and an alternative login identifier.
	// Uniqueness is enforced by a unique index on the collection.
	Email string `bson:"email" json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialised
	// to JSON.
	Password string `bson:"password" json:"-"`

	// Address is the default shipping address of the user.
	Address string `bson:"address" json:"address"`

	// PhoneNumber is the contact phone number of the user.
	PhoneNumber string `bson:"phone_number" json:"phoneNumber"`

	// IsVerified reports whether the user has confirmed ownership of Email
	// by redeeming a verification token. New accounts start unverified.
	IsVerified bool `bson:"is_verified" json:"isVerified"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
