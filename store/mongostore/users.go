package mongostore

import (
	"context"
	"errors"
	"fmt"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the users collection.
type UserStore struct {
	c *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{c: db.Collection(usersCollection)}
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := make([]models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindByEmail returns store.ErrNotFound when no user has the email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// Create checks for an existing email before inserting. The unique index
// catches the insert that loses a race between two identical signups.
func (s *UserStore) Create(ctx context.Context, u models.User) (models.InsertResult, error) {
	err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return models.InsertResult{}, store.ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.InsertResult{}, fmt.Errorf("check existing user: %w", err)
	}

	u.ID = primitive.NewObjectID()
	u.Role = models.RoleRegular
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, store.ErrUserExists
		}
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (s *UserStore) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("promote user: %w", err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
