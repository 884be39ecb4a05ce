package mongostore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewStore is the reviews collection.
type ReviewStore struct {
	c *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	return &ReviewStore{c: db.Collection(reviewsCollection)}
}

func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	reviews := make([]models.Review, 0)
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

// InsertMany is used for seeding only.
func (s *ReviewStore) InsertMany(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		if reviews[i].ID.IsZero() {
			reviews[i].ID = primitive.NewObjectID()
		}
		docs[i] = reviews[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert reviews: %w", err)
	}
	return nil
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
