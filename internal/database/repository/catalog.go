package repository

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
)

// CatalogRepo handles the global grocery catalog shared by all shelves,
// shopping lists and recipes.
type CatalogRepo struct {
	store *database.Store
}

func NewCatalogRepo(store *database.Store) *CatalogRepo { return &CatalogRepo{store: store} }

func (r *CatalogRepo) Exists(ctx context.Context, name string) (bool, error) {
	rows, err := r.store.Query(ctx, "grocery.get", `SELECT name FROM grocery WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (r *CatalogRepo) Create(ctx context.Context, name, unit string) error {
	_, err := r.store.Exec(ctx, "grocery.create", `INSERT INTO grocery (name, unit) VALUES (?, ?)`, name, unit)
	return err
}

// Ensure inserts name into the catalog only if it is not there yet.
func (r *CatalogRepo) Ensure(ctx context.Context, name, unit string) error {
	ok, err := r.Exists(ctx, name)
	if err != nil || ok {
		return err
	}
	return r.Create(ctx, name, unit)
}

// Unit returns the catalog unit for name, or "" if name is unknown.
func (r *CatalogRepo) Unit(ctx context.Context, name string) (string, error) {
	rows, err := r.store.Query(ctx, "grocery.unit", `SELECT unit FROM grocery WHERE name = ?`, name)
	if err != nil || len(rows) == 0 {
		return "", err
	}
	return rows[0].String("unit"), nil
}

func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	rows, err := r.store.Query(ctx, "grocery.count", `SELECT COUNT(*) AS n FROM grocery`)
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return int(rows[0].Int("n")), nil
}

var defaultGroceries = []struct{ name, unit string }{
	{"milk", "l"},
	{"egg", "pcs"},
	{"flour", "kg"},
	{"sugar", "kg"},
	{"butter", "g"},
	{"salt", "g"},
	{"rice", "kg"},
	{"pasta", "g"},
	{"apple", "pcs"},
	{"banana", "pcs"},
}

// SeedDefaults fills an empty catalog with common groceries. It is
// idempotent and safe to run on every startup.
func (r *CatalogRepo) SeedDefaults(ctx context.Context) error {
	n, err := r.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	return r.store.WithTx(ctx, func(tx *database.Store) error {
		catalog := NewCatalogRepo(tx)
		for _, g := range defaultGroceries {
			if err := catalog.Ensure(ctx, g.name, g.unit); err != nil {
				return err
			}
		}
		return nil
	})
}
