package sqlstore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// CartStore is the carts table.
type CartStore struct {
	db *gorm.DB
}

func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	var rows []cartRow
	if err := s.db.WithContext(ctx).Where("email = ?", email).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find cart entries: %w", err)
	}
	entries := make([]models.CartEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.model())
	}
	return entries, nil
}

func (s *CartStore) Insert(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	id := primitive.NewObjectID()
	row := cartRow{
		ID:         id.Hex(),
		MenuItemID: entry.MenuItemID,
		Name:       entry.Name,
		Image:      entry.Image,
		Price:      entry.Price,
		Email:      entry.Email,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert cart entry: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *CartStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res := s.db.WithContext(ctx).Where("id = ?", oid.Hex()).Delete(&cartRow{})
	if res.Error != nil {
		return models.DeleteResult{}, fmt.Errorf("delete cart entry: %w", res.Error)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
