package sqlstore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// ReviewStore is the reviews table.
type ReviewStore struct {
	db *gorm.DB
}

func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	var rows []reviewRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	reviews := make([]models.Review, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, r.model())
	}
	return reviews, nil
}

func (s *ReviewStore) InsertMany(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	rows := make([]reviewRow, len(reviews))
	for i, r := range reviews {
		id := r.ID
		if id.IsZero() {
			id = primitive.NewObjectID()
		}
		rows[i] = reviewRow{ID: id.Hex(), Name: r.Name, Details: r.Details, Rating: r.Rating}
	}
	if err := s.db.WithContext(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("insert reviews: %w", err)
	}
	return nil
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&reviewRow{}).Count(&n).Error
	return n, err
}
