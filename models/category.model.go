package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a recipe category, e.g. "Dessert" or "Breakfast"
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}
