// Package store defines the collections the API reads and writes. Each
// backend (mongostore, sqlstore) provides all of them.
package store

import (
	"context"
	"errors"

	"bistro-boss-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrUserExists is returned by UserStore.Create when the email is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidID is returned when an id is not a 24-char hex ObjectID.
	ErrInvalidID = errors.New("invalid id")
)

// UserStore reads and writes the users collection.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts u unless a user with the same email already exists.
	Create(ctx context.Context, u models.User) (models.InsertResult, error)
	MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

// MenuStore reads and writes the menu collection.
type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (models.InsertResult, error)
	InsertMany(ctx context.Context, items []models.MenuItem) error
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// ReviewStore reads the reviews collection; inserts only come from seeding.
type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	InsertMany(ctx context.Context, reviews []models.Review) error
	Count(ctx context.Context) (int64, error)
}

// CartStore reads and writes cart entries.
type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	Insert(ctx context.Context, entry models.CartEntry) (models.InsertResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// PaymentStore records payments and reports on them.
type PaymentStore interface {
	// Record inserts p and deletes the cart entries listed in p.CartItems.
	Record(ctx context.Context, p models.Payment) (models.PaymentResult, error)
	Count(ctx context.Context) (int64, error)
	// Revenue sums price over every payment.
	Revenue(ctx context.Context) (float64, error)
}

// Conn is the lifecycle side of a backend.
type Conn interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Store bundles every collection of one backend. It is opened once at
// startup and shared by all requests.
type Store struct {
	Users    UserStore
	Menu     MenuStore
	Reviews  ReviewStore
	Carts    CartStore
	Payments PaymentStore
	Conn     Conn
}

// ParseID converts a hex id into an ObjectID, mapping failures to ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ParseIDs converts every id or fails on the first malformed one.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
