package repository

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
)

// RecipeRepo handles recipes with their ingredients and steps.
type RecipeRepo struct {
	store *database.Store
}

func NewRecipeRepo(store *database.Store) *RecipeRepo { return &RecipeRepo{store: store} }

func (r *RecipeRepo) List(ctx context.Context, user string) ([]Recipe, error) {
	rows, err := r.store.Query(ctx, "recipe.list",
		`SELECT name, is_favorite FROM recipe WHERE user_name = ? ORDER BY name`, user)
	if err != nil {
		return nil, err
	}
	out := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		rec := Recipe{Name: row.String("name"), UserName: user, IsFavorite: row.Bool("is_favorite")}
		ing, err := r.store.Query(ctx, "recipe.ingredients", `
		SELECT rg.grocery_name AS grocery_name, rg.quantity AS quantity, g.unit AS unit
		FROM recipe_grocery rg
		INNER JOIN grocery g ON g.name = rg.grocery_name
		WHERE rg.recipe_name = ? AND rg.user_name = ?
		ORDER BY rg.position`, rec.Name, user)
		if err != nil {
			return nil, err
		}
		for _, i := range ing {
			rec.Ingredients = append(rec.Ingredients, Ingredient{
				GroceryName: i.String("grocery_name"),
				Unit:        i.String("unit"),
				Quantity:    int(i.Int("quantity")),
			})
		}
		steps, err := r.store.Query(ctx, "recipe.steps", `
		SELECT instruction FROM recipe_step
		WHERE recipe_name = ? AND user_name = ?
		ORDER BY position`, rec.Name, user)
		if err != nil {
			return nil, err
		}
		for _, s := range steps {
			rec.Steps = append(rec.Steps, s.String("instruction"))
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save writes rec and replaces its ingredients and steps in one transaction.
// Ingredient names are added to the catalog when missing.
func (r *RecipeRepo) Save(ctx context.Context, rec Recipe) error {
	return r.store.WithTx(ctx, func(tx *database.Store) error {
		rows, err := tx.Query(ctx, "recipe.get",
			`SELECT name FROM recipe WHERE name = ? AND user_name = ?`, rec.Name, rec.UserName)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			if _, err := tx.Exec(ctx, "recipe.create",
				`INSERT INTO recipe (name, user_name, is_favorite) VALUES (?, ?, ?)`,
				rec.Name, rec.UserName, rec.IsFavorite); err != nil {
				return err
			}
		} else if _, err := tx.Exec(ctx, "recipe.update",
			`UPDATE recipe SET is_favorite = ? WHERE name = ? AND user_name = ?`,
			rec.IsFavorite, rec.Name, rec.UserName); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, "recipe.ingredients.clear",
			`DELETE FROM recipe_grocery WHERE recipe_name = ? AND user_name = ?`, rec.Name, rec.UserName); err != nil {
			return err
		}
		catalog := NewCatalogRepo(tx)
		for pos, ing := range rec.Ingredients {
			if err := catalog.Ensure(ctx, ing.GroceryName, ing.Unit); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, "recipe.ingredients.add", `
			INSERT INTO recipe_grocery (recipe_name, user_name, grocery_name, quantity, position)
			VALUES (?, ?, ?, ?, ?)`, rec.Name, rec.UserName, ing.GroceryName, ing.Quantity, pos); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, "recipe.steps.clear",
			`DELETE FROM recipe_step WHERE recipe_name = ? AND user_name = ?`, rec.Name, rec.UserName); err != nil {
			return err
		}
		for pos, text := range rec.Steps {
			if _, err := tx.Exec(ctx, "recipe.steps.add", `
			INSERT INTO recipe_step (recipe_name, user_name, position, instruction)
			VALUES (?, ?, ?, ?)`, rec.Name, rec.UserName, pos, text); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RecipeRepo) SetFavorite(ctx context.Context, user, name string, favorite bool) error {
	_, err := r.store.Exec(ctx, "recipe.favorite",
		`UPDATE recipe SET is_favorite = ? WHERE name = ? AND user_name = ?`, favorite, name, user)
	return err
}

// Delete removes a recipe; ingredients and steps go with it through the
// foreign keys.
func (r *RecipeRepo) Delete(ctx context.Context, user, name string) error {
	_, err := r.store.Exec(ctx, "recipe.delete",
		`DELETE FROM recipe WHERE name = ? AND user_name = ?`, name, user)
	return err
}
