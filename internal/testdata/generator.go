// Package testdata fills a database with sample pantry data for demos and
// manual testing.
package testdata

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jask/pantrypal/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Users    *repository.UserRepo
	Catalog  *repository.CatalogRepo
	Shelves  *repository.ShelfRepo
	Shopping *repository.ShoppingListRepo
	Recipes  *repository.RecipeRepo
}

type sample struct{ name, unit string }

var shelfContents = map[string][]sample{
	"Fridge":  {{"milk", "l"}, {"butter", "g"}, {"egg", "pcs"}, {"cheese", "g"}},
	"Pantry":  {{"flour", "kg"}, {"sugar", "kg"}, {"rice", "kg"}, {"pasta", "g"}},
	"Freezer": {{"peas", "g"}, {"ice cream", "l"}},
}

var shelfOrder = []string{"Fridge", "Pantry", "Freezer"}

var sampleRecipes = []repository.Recipe{
	{
		Name:       "Pancakes",
		IsFavorite: true,
		Ingredients: []repository.Ingredient{
			{GroceryName: "flour", Unit: "kg", Quantity: 1},
			{GroceryName: "milk", Unit: "l", Quantity: 1},
			{GroceryName: "egg", Unit: "pcs", Quantity: 2},
		},
		Steps: []string{"Whisk everything into a smooth batter", "Rest for 10 minutes", "Fry in butter"},
	},
	{
		Name: "Pasta with peas",
		Ingredients: []repository.Ingredient{
			{GroceryName: "pasta", Unit: "g", Quantity: 400},
			{GroceryName: "peas", Unit: "g", Quantity: 200},
			{GroceryName: "cheese", Unit: "g", Quantity: 50},
		},
		Steps: []string{"Boil the pasta", "Add the peas for the last 3 minutes", "Drain and top with cheese"},
	},
}

// Seed creates sample shelves, a shopping list and recipes for user. The
// same seed always produces the same quantities.
func Seed(ctx context.Context, repos Repos, user string, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if err := repos.Users.Ensure(ctx, user); err != nil {
		return err
	}
	for _, shelfName := range shelfOrder {
		id, err := repos.Shelves.Create(ctx, shelfName, user)
		if err != nil {
			return fmt.Errorf("seed shelf %s: %w", shelfName, err)
		}
		for _, g := range shelfContents[shelfName] {
			if err := repos.Catalog.Ensure(ctx, g.name, g.unit); err != nil {
				return err
			}
			if err := repos.Shelves.AddGrocery(ctx, id, g.name, 1+rng.IntN(5)); err != nil {
				return fmt.Errorf("seed %s on %s: %w", g.name, shelfName, err)
			}
		}
	}

	for _, g := range []sample{{"apple", "pcs"}, {"banana", "pcs"}, {"salt", "g"}} {
		if err := repos.Catalog.Ensure(ctx, g.name, g.unit); err != nil {
			return err
		}
		item := repository.ShoppingListItem{
			GroceryName: g.name,
			UserName:    user,
			Quantity:    1 + rng.IntN(6),
			IsBought:    rng.IntN(3) == 0,
			ShelfName:   "Pantry",
		}
		if err := repos.Shopping.Insert(ctx, item); err != nil {
			return fmt.Errorf("seed shopping %s: %w", g.name, err)
		}
	}

	for _, rec := range sampleRecipes {
		rec.UserName = user
		if err := repos.Recipes.Save(ctx, rec); err != nil {
			return fmt.Errorf("seed recipe %s: %w", rec.Name, err)
		}
	}
	return nil
}
