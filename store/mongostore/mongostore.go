// Package mongostore implements the store collections on MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"strings"

	"bistro-boss-api/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names match the original Bistro database.
const (
	usersCollection    = "users"
	menuCollection     = "menu"
	reviewsCollection  = "reviews"
	cartsCollection    = "carts"
	paymentsCollection = "payments"
)

// Options configures Open.
type Options struct {
	URI      string
	Database string
	// AtomicPayments runs payment recording in a transaction when the
	// server supports it.
	AtomicPayments bool
}

type conn struct {
	client *mongo.Client
}

func (c *conn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *conn) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Open connects, pings, ensures indexes and returns every collection.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (*store.Store, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if strings.HasPrefix(opts.URI, "mongodb+srv://") {
		clientOpts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("pinged deployment, mongo connected", zap.String("database", opts.Database))

	db := client.Database(opts.Database)
	if err := EnsureIndexes(ctx, db); err != nil {
		// Existing duplicate emails block the unique index; the read-then-insert
		// check in UserStore.Create still applies without it.
		logger.Warn("could not ensure mongo indexes", zap.Error(err))
	}
	return New(client, db, opts.AtomicPayments, logger), nil
}

// New wires the collections of db without connecting or pinging.
func New(client *mongo.Client, db *mongo.Database, atomicPayments bool, logger *zap.Logger) *store.Store {
	return &store.Store{
		Users:    NewUserStore(db),
		Menu:     NewMenuStore(db),
		Reviews:  NewReviewStore(db),
		Carts:    NewCartStore(db),
		Payments: NewPaymentStore(client, db, atomicPayments, logger),
		Conn:     &conn{client: client},
	}
}

// EnsureIndexes creates the unique email index on users.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}
