package repository

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
)

// ShoppingListRepo handles the per-user shopping list.
type ShoppingListRepo struct {
	store *database.Store
}

func NewShoppingListRepo(store *database.Store) *ShoppingListRepo {
	return &ShoppingListRepo{store: store}
}

func (r *ShoppingListRepo) List(ctx context.Context, user string) ([]ShoppingListItem, error) {
	rows, err := r.store.Query(ctx, "shopping.list", `
	SELECT s.grocery_name AS grocery_name, s.user_name AS user_name, s.quantity AS quantity,
	       s.is_bought AS is_bought, s.shelf_name AS shelf_name, g.unit AS unit
	FROM shopping_list_grocery s
	LEFT JOIN grocery g ON g.name = s.grocery_name
	WHERE s.user_name = ?
	ORDER BY s.grocery_name`, user)
	if err != nil {
		return nil, err
	}
	out := make([]ShoppingListItem, 0, len(rows))
	for _, row := range rows {
		unit := row.String("unit")
		if unit == "" {
			unit = "g"
		}
		out = append(out, ShoppingListItem{
			GroceryName: row.String("grocery_name"),
			UserName:    row.String("user_name"),
			Quantity:    int(row.Int("quantity")),
			Unit:        unit,
			IsBought:    row.Bool("is_bought"),
			ShelfName:   row.String("shelf_name"),
		})
	}
	return out, nil
}

func (r *ShoppingListRepo) Exists(ctx context.Context, user, name string) (bool, error) {
	rows, err := r.store.Query(ctx, "shopping.get",
		`SELECT grocery_name FROM shopping_list_grocery WHERE grocery_name = ? AND user_name = ?`, name, user)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (r *ShoppingListRepo) Insert(ctx context.Context, item ShoppingListItem) error {
	_, err := r.store.Exec(ctx, "shopping.insert", `
	INSERT INTO shopping_list_grocery (grocery_name, user_name, quantity, is_bought, shelf_name)
	VALUES (?, ?, ?, ?, ?)`,
		item.GroceryName, item.UserName, item.Quantity, item.IsBought, item.ShelfName)
	return err
}

func (r *ShoppingListRepo) AddQuantity(ctx context.Context, user, name string, delta int) error {
	_, err := r.store.Exec(ctx, "shopping.add_quantity",
		`UPDATE shopping_list_grocery SET quantity = quantity + ? WHERE grocery_name = ? AND user_name = ?`,
		delta, name, user)
	return err
}

func (r *ShoppingListRepo) SetQuantity(ctx context.Context, user, name string, quantity int) error {
	_, err := r.store.Exec(ctx, "shopping.quantity",
		`UPDATE shopping_list_grocery SET quantity = ? WHERE user_name = ? AND grocery_name = ?`,
		quantity, user, name)
	return err
}

func (r *ShoppingListRepo) SetBought(ctx context.Context, user, name string, bought bool) error {
	_, err := r.store.Exec(ctx, "shopping.bought",
		`UPDATE shopping_list_grocery SET is_bought = ? WHERE user_name = ? AND grocery_name = ?`,
		bought, user, name)
	return err
}

func (r *ShoppingListRepo) Delete(ctx context.Context, user, name string) error {
	_, err := r.store.Exec(ctx, "shopping.delete",
		`DELETE FROM shopping_list_grocery WHERE user_name = ? AND grocery_name = ?`, user, name)
	return err
}
