package repository

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
)

// ShelfRepo handles pantry shelves and the groceries linked to them.
type ShelfRepo struct {
	store *database.Store
}

func NewShelfRepo(store *database.Store) *ShelfRepo { return &ShelfRepo{store: store} }

func (r *ShelfRepo) List(ctx context.Context, user string) ([]Shelf, error) {
	rows, err := r.store.Query(ctx, "shelf.list",
		`SELECT id, name, user_name FROM pantry_shelf WHERE user_name = ? ORDER BY id`, user)
	if err != nil {
		return nil, err
	}
	out := make([]Shelf, 0, len(rows))
	for _, row := range rows {
		out = append(out, Shelf{ID: row.Int("id"), Name: row.String("name"), UserName: row.String("user_name")})
	}
	return out, nil
}

// Create inserts a shelf and returns its generated id.
func (r *ShelfRepo) Create(ctx context.Context, name, user string) (int64, error) {
	return r.store.InsertID(ctx, "shelf.create",
		`INSERT INTO pantry_shelf (name, user_name) VALUES (?, ?) RETURNING id`, name, user)
}

func (r *ShelfRepo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.store.Exec(ctx, "shelf.rename", `UPDATE pantry_shelf SET name = ? WHERE id = ?`, name, id)
	return err
}

func (r *ShelfRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Exec(ctx, "shelf.delete", `DELETE FROM pantry_shelf WHERE id = ?`, id)
	return err
}

func (r *ShelfRepo) Groceries(ctx context.Context, shelfID int64) ([]ShelfGrocery, error) {
	rows, err := r.store.Query(ctx, "shelf.groceries", `
	SELECT g.name AS name, g.unit AS unit, psg.quantity AS quantity
	FROM pantry_shelf_grocery psg
	INNER JOIN grocery g ON g.name = psg.grocery_name
	WHERE psg.pantry_shelf_id = ?
	ORDER BY psg.grocery_name`, shelfID)
	if err != nil {
		return nil, err
	}
	out := make([]ShelfGrocery, 0, len(rows))
	for _, row := range rows {
		out = append(out, ShelfGrocery{Name: row.String("name"), Unit: row.String("unit"), Quantity: int(row.Int("quantity"))})
	}
	return out, nil
}

func (r *ShelfRepo) AddGrocery(ctx context.Context, shelfID int64, name string, quantity int) error {
	_, err := r.store.Exec(ctx, "shelf.grocery.add",
		`INSERT INTO pantry_shelf_grocery (pantry_shelf_id, grocery_name, quantity) VALUES (?, ?, ?)`,
		shelfID, name, quantity)
	return err
}

func (r *ShelfRepo) SetGroceryQuantity(ctx context.Context, shelfID int64, name string, quantity int) error {
	_, err := r.store.Exec(ctx, "shelf.grocery.quantity",
		`UPDATE pantry_shelf_grocery SET quantity = ? WHERE pantry_shelf_id = ? AND grocery_name = ?`,
		quantity, shelfID, name)
	return err
}

func (r *ShelfRepo) DeleteGrocery(ctx context.Context, shelfID int64, name string) error {
	_, err := r.store.Exec(ctx, "shelf.grocery.delete",
		`DELETE FROM pantry_shelf_grocery WHERE pantry_shelf_id = ? AND grocery_name = ?`, shelfID, name)
	return err
}
