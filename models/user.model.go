package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system
type User struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Username          string               `bson:"username" json:"username"`
	Email             string               `bson:"email" json:"email"`
	Password          string               `bson:"password,omitempty" json:"-"`
	Role              string               `bson:"role" json:"role"` // "user" or "admin"
	Favorites         []primitive.ObjectID `bson:"favorites" json:"favorites"`
	IsVerified        bool                 `bson:"is_verified" json:"is_verified"`
	VerificationToken string               `bson:"verification_token" json:"-"`
}
