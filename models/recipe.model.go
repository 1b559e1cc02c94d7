package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe represents a shared recipe
type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"` // username of the creator
	Category    string             `bson:"category" json:"category"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	Steps       []string           `bson:"steps" json:"steps"`
	Public      bool               `bson:"public" json:"public"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
