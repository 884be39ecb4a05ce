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

// MenuStore is the menu collection.
type MenuStore struct {
	c *mongo.Collection
}

func NewMenuStore(db *mongo.Database) *MenuStore {
	return &MenuStore{c: db.Collection(menuCollection)}
}

func (s *MenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items := make([]models.MenuItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

func (s *MenuStore) Insert(ctx context.Context, item models.MenuItem) (models.InsertResult, error) {
	item.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return models.InsertResult{}, fmt.Errorf("insert menu item: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *MenuStore) InsertMany(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
		docs[i] = items[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert menu items: %w", err)
	}
	return nil
}

func (s *MenuStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete menu item: %w", err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *MenuStore) Count(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
