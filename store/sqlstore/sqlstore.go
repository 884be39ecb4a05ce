// Package sqlstore implements the store collections with gorm on an embedded
// SQLite file. It backs local development and the test suites.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bistro-boss-api/store"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type conn struct {
	db *gorm.DB
}

func (c *conn) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *conn) Close(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open opens (creating if needed) the SQLite file at path and migrates every table.
func Open(path string, atomicPayments bool, log *zap.Logger) (*store.Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	err = db.AutoMigrate(
		&userRow{},
		&menuRow{},
		&reviewRow{},
		&cartRow{},
		&paymentRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	log.Info("sqlite store opened and migrated", zap.String("path", path))
	return New(db, atomicPayments), nil
}

// New wires the collections over an already migrated db.
func New(db *gorm.DB, atomicPayments bool) *store.Store {
	return &store.Store{
		Users:    &UserStore{db: db},
		Menu:     &MenuStore{db: db},
		Reviews:  &ReviewStore{db: db},
		Carts:    &CartStore{db: db},
		Payments: &PaymentStore{db: db, atomic: atomicPayments},
		Conn:     &conn{db: db},
	}
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
