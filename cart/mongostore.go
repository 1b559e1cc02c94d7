package cart

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-recipes/models"
)

// MongoStore persists carts in the "carts" collection, one document per
// username.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore creates a MongoStore backed by the given client
func NewMongoStore(client *mongo.Client) *MongoStore {
	collection := client.Database("recipes").Collection("carts")
	return &MongoStore{
		Collection: collection,
	}
}

func (s *MongoStore) Get(ctx context.Context, username string) (models.Cart, bool, error) {
	var c models.Cart
	err := s.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{Username: username}, false, nil
	}
	if err != nil {
		return models.Cart{}, false, err
	}
	return c, true, nil
}

func (s *MongoStore) Save(ctx context.Context, cart models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"username": cart.Username}, cart, opts)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, username string) (bool, error) {
	result, err := s.Collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
