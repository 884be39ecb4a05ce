// Package testutil provides stores, tokens and fakes shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bistro-boss-api/middleware"
	"bistro-boss-api/models"
	"bistro-boss-api/payment"
	"bistro-boss-api/store"
	"bistro-boss-api/store/sqlstore"

	"go.uber.org/zap"
)

// TokenSecret signs every token issued in tests.
const TokenSecret = "test-secret-for-testing-only"

// TestContext returns a context bounded to ten seconds.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// NewStore opens a migrated SQLite store in a temp dir with atomic payments.
func NewStore(t *testing.T) *store.Store {
	return NewStoreWith(t, true)
}

// NewStoreWith opens a SQLite store choosing the payment recording mode.
func NewStoreWith(t *testing.T, atomicPayments bool) *store.Store {
	t.Helper()
	st, err := sqlstore.Open(filepath.Join(t.TempDir(), "bistro_test.db"), atomicPayments, zap.NewNop())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Conn.Close(context.Background()) })
	return st
}

func NewTokenService() *middleware.TokenService {
	return middleware.NewTokenService([]byte(TokenSecret), 5*time.Hour)
}

// Token issues a valid token for email.
func Token(t *testing.T, email string) string {
	t.Helper()
	tok, err := NewTokenService().Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// CreateUser inserts a regular user and returns its id.
func CreateUser(t *testing.T, st *store.Store, email string) string {
	t.Helper()
	ctx, cancel := TestContext()
	defer cancel()
	res, err := st.Users.Create(ctx, models.User{Name: "Test User", Email: email})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return res.InsertedID.Hex()
}

// CreateAdmin inserts a user and promotes it.
func CreateAdmin(t *testing.T, st *store.Store, email string) string {
	t.Helper()
	id := CreateUser(t, st, email)
	ctx, cancel := TestContext()
	defer cancel()
	if _, err := st.Users.MakeAdmin(ctx, id); err != nil {
		t.Fatalf("promote %s: %v", email, err)
	}
	return id
}

// AddCartEntry inserts a cart entry for email and returns its id.
func AddCartEntry(t *testing.T, st *store.Store, email, name string, price float64) string {
	t.Helper()
	ctx, cancel := TestContext()
	defer cancel()
	res, err := st.Carts.Insert(ctx, models.CartEntry{
		MenuItemID: "642c155b2c4774f05c36eeaa",
		Name:       name,
		Price:      price,
		Email:      email,
	})
	if err != nil {
		t.Fatalf("insert cart entry: %v", err)
	}
	return res.InsertedID.Hex()
}

// FakeProcessor stands in for the payment processor. It rejects the same
// amounts the real one does.
type FakeProcessor struct {
	CreateFunc func(ctx context.Context, price float64) (string, error)
	Calls      []float64
}

func (f *FakeProcessor) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	f.Calls = append(f.Calls, price)
	if _, err := payment.MinorUnits(price); err != nil {
		return "", err
	}
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, price)
	}
	return "pi_test_secret_123", nil
}
