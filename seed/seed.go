// Package seed loads menu and review fixtures into empty collections.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"go.uber.org/zap"
)

const (
	menuFile    = "menu.json"
	reviewsFile = "reviews.json"
)

// Load reads menu.json and reviews.json from dir. A file is skipped when it
// is missing or when its collection already holds documents.
func Load(ctx context.Context, dir string, st *store.Store, log *zap.Logger) error {
	var items []models.MenuItem
	found, err := readJSON(filepath.Join(dir, menuFile), &items)
	if err != nil {
		return err
	}
	if found {
		n, err := st.Menu.Count(ctx)
		if err != nil {
			return fmt.Errorf("count menu: %w", err)
		}
		if n == 0 {
			if err := st.Menu.InsertMany(ctx, items); err != nil {
				return err
			}
			log.Info("seeded menu", zap.Int("items", len(items)))
		}
	}

	var reviews []models.Review
	found, err = readJSON(filepath.Join(dir, reviewsFile), &reviews)
	if err != nil {
		return err
	}
	if found {
		n, err := st.Reviews.Count(ctx)
		if err != nil {
			return fmt.Errorf("count reviews: %w", err)
		}
		if n == 0 {
			if err := st.Reviews.InsertMany(ctx, reviews); err != nil {
				return err
			}
			log.Info("seeded reviews", zap.Int("reviews", len(reviews)))
		}
	}
	return nil
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}
