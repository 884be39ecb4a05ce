package sqlstore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// MenuStore is the menu table.
type MenuStore struct {
	db *gorm.DB
}

func (s *MenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	var rows []menuRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items := make([]models.MenuItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.model())
	}
	return items, nil
}

func (s *MenuStore) Insert(ctx context.Context, item models.MenuItem) (models.InsertResult, error) {
	item.ID = primitive.NewObjectID()
	row := menuRowFrom(item)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert menu item: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *MenuStore) InsertMany(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]menuRow, len(items))
	for i, it := range items {
		if it.ID.IsZero() {
			it.ID = primitive.NewObjectID()
		}
		rows[i] = menuRowFrom(it)
	}
	if err := s.db.WithContext(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("insert menu items: %w", err)
	}
	return nil
}

func (s *MenuStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res := s.db.WithContext(ctx).Where("id = ?", oid.Hex()).Delete(&menuRow{})
	if res.Error != nil {
		return models.DeleteResult{}, fmt.Errorf("delete menu item: %w", res.Error)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}

func (s *MenuStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&menuRow{}).Count(&n).Error
	return n, err
}
