package mongostore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore is the carts collection.
type CartStore struct {
	c *mongo.Collection
}

func NewCartStore(db *mongo.Database) *CartStore {
	return &CartStore{c: db.Collection(cartsCollection)}
}

func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find cart entries: %w", err)
	}
	entries := make([]models.CartEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode cart entries: %w", err)
	}
	return entries, nil
}

func (s *CartStore) Insert(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	entry.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, entry); err != nil {
		return models.InsertResult{}, fmt.Errorf("insert cart entry: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: entry.ID}, nil
}

func (s *CartStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete cart entry: %w", err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
