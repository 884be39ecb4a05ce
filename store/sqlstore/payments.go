package sqlstore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// PaymentStore is the payments table; recording also clears carts.
type PaymentStore struct {
	db     *gorm.DB
	atomic bool
}

// Record inserts the payment and deletes its cart entries, inside one
// transaction when atomic is set.
func (s *PaymentStore) Record(ctx context.Context, p models.Payment) (models.PaymentResult, error) {
	ids, err := store.ParseIDs(p.CartItems)
	if err != nil {
		return models.PaymentResult{}, err
	}
	p.ID = primitive.NewObjectID()
	if p.CartItems == nil {
		p.CartItems = []string{}
	}

	if !s.atomic {
		return record(s.db.WithContext(ctx), p, ids)
	}
	var res models.PaymentResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = record(tx, p, ids)
		return err
	})
	if err != nil {
		return models.PaymentResult{}, err
	}
	return res, nil
}

func record(db *gorm.DB, p models.Payment, cartIDs []primitive.ObjectID) (models.PaymentResult, error) {
	row := paymentRowFrom(p)
	if err := db.Create(&row).Error; err != nil {
		return models.PaymentResult{}, fmt.Errorf("insert payment: %w", err)
	}
	res := models.PaymentResult{
		InsertResult: models.InsertResult{Acknowledged: true, InsertedID: p.ID},
		DeleteResult: models.DeleteResult{Acknowledged: true},
	}
	if len(cartIDs) == 0 {
		return res, nil
	}
	hexIDs := make([]string, len(cartIDs))
	for i, id := range cartIDs {
		hexIDs[i] = id.Hex()
	}
	del := db.Where("id IN ?", hexIDs).Delete(&cartRow{})
	if del.Error != nil {
		return models.PaymentResult{}, fmt.Errorf("delete paid cart entries: %w", del.Error)
	}
	res.DeleteResult.DeletedCount = del.RowsAffected
	return res, nil
}

func (s *PaymentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&paymentRow{}).Count(&n).Error
	return n, err
}

// Revenue plucks every price and sums it in Go.
func (s *PaymentStore) Revenue(ctx context.Context) (float64, error) {
	var prices []float64
	if err := s.db.WithContext(ctx).Model(&paymentRow{}).Pluck("price", &prices).Error; err != nil {
		return 0, fmt.Errorf("pluck payment prices: %w", err)
	}
	var total float64
	for _, p := range prices {
		total += p
	}
	return total, nil
}
