package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// UserStore is the users table.
type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.model())
	}
	return users, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var row userRow
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	u := row.model()
	return &u, nil
}

func (s *UserStore) Create(ctx context.Context, u models.User) (models.InsertResult, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&userRow{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("check existing user: %w", err)
	}
	if n > 0 {
		return models.InsertResult{}, store.ErrUserExists
	}

	id := primitive.NewObjectID()
	row := userRow{
		ID:      id.Hex(),
		Email:   u.Email,
		Name:    u.Name,
		Profile: u.Profile,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicate(err) {
			return models.InsertResult{}, store.ErrUserExists
		}
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// MakeAdmin reports matched and modified counts the way the document store
// does: promoting an existing admin matches but does not modify.
func (s *UserStore) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	db := s.db.WithContext(ctx)

	var matched int64
	if err := db.Model(&userRow{}).Where("id = ?", oid.Hex()).Count(&matched).Error; err != nil {
		return models.UpdateResult{}, fmt.Errorf("find user: %w", err)
	}
	res := db.Model(&userRow{}).
		Where("id = ? AND (role IS NULL OR role <> ?)", oid.Hex(), string(models.RoleAdmin)).
		Update("role", string(models.RoleAdmin))
	if res.Error != nil {
		return models.UpdateResult{}, fmt.Errorf("promote user: %w", res.Error)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: res.RowsAffected,
	}, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&userRow{}).Count(&n).Error
	return n, err
}
