package repository

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
)

// UserRepo handles users.
type UserRepo struct {
	store *database.Store
}

func NewUserRepo(store *database.Store) *UserRepo { return &UserRepo{store: store} }

// Ensure creates the user row if missing.
func (r *UserRepo) Ensure(ctx context.Context, name string) error {
	rows, err := r.store.Query(ctx, "user.get", `SELECT name FROM users WHERE name = ?`, name)
	if err != nil || len(rows) > 0 {
		return err
	}
	_, err = r.store.Exec(ctx, "user.create", `INSERT INTO users (name) VALUES (?)`, name)
	return err
}
