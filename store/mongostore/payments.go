package mongostore

import (
	"context"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PaymentStore is the payments collection; recording also clears carts.
type PaymentStore struct {
	client   *mongo.Client
	payments *mongo.Collection
	carts    *mongo.Collection
	atomic   bool
	log      *zap.Logger
}

func NewPaymentStore(client *mongo.Client, db *mongo.Database, atomic bool, logger *zap.Logger) *PaymentStore {
	return &PaymentStore{
		client:   client,
		payments: db.Collection(paymentsCollection),
		carts:    db.Collection(cartsCollection),
		atomic:   atomic,
		log:      logger,
	}
}

// Record inserts the payment and clears the paid cart entries. When atomic
// is set both writes share a transaction; servers without transaction
// support (standalone mongod) fall back to insert-then-delete, where a
// failed delete leaves the payment recorded and the cart untouched.
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
		return s.record(ctx, p, ids)
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return s.record(sc, p, ids)
	})
	if err != nil {
		if IsNotSupported(err) {
			s.log.Warn("transactions not supported, recording payment without one",
				zap.String("payment_id", p.ID.Hex()),
				zap.Error(err))
			return s.record(ctx, p, ids)
		}
		return models.PaymentResult{}, err
	}
	return out.(models.PaymentResult), nil
}

func (s *PaymentStore) record(ctx context.Context, p models.Payment, cartIDs []primitive.ObjectID) (models.PaymentResult, error) {
	if _, err := s.payments.InsertOne(ctx, p); err != nil {
		return models.PaymentResult{}, fmt.Errorf("insert payment: %w", err)
	}
	res := models.PaymentResult{
		InsertResult: models.InsertResult{Acknowledged: true, InsertedID: p.ID},
		DeleteResult: models.DeleteResult{Acknowledged: true},
	}
	if len(cartIDs) == 0 {
		return res, nil
	}
	dr, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("delete paid cart entries: %w", err)
	}
	res.DeleteResult.DeletedCount = dr.DeletedCount
	return res, nil
}

func (s *PaymentStore) Count(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

// Revenue scans the price field of every payment.
func (s *PaymentStore) Revenue(ctx context.Context) (float64, error) {
	cur, err := s.payments.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"price": 1}))
	if err != nil {
		return 0, fmt.Errorf("find payments: %w", err)
	}
	defer cur.Close(ctx)

	var total float64
	for cur.Next(ctx) {
		var row struct {
			Price float64 `bson:"price"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode payment price: %w", err)
		}
		total += row.Price
	}
	if err := cur.Err(); err != nil {
		return 0, fmt.Errorf("iterate payments: %w", err)
	}
	return total, nil
}
