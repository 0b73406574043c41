package repository

import "github.com/jask/pantrypal/internal/domain"

// RecipeFromDomain flattens rec into a row owned by user.
func RecipeFromDomain(user string, rec *domain.Recipe) Recipe {
	out := Recipe{Name: rec.Name(), UserName: user, IsFavorite: rec.Favorite(), Steps: rec.Steps().Texts()}
	for g := range rec.Ingredients().All() {
		out.Ingredients = append(out.Ingredients, Ingredient{GroceryName: g.Name(), Unit: g.Unit(), Quantity: g.Quantity()})
	}
	return out
}

// ToDomain rebuilds the recipe with fresh registers. Duplicate ingredient
// names keep the first occurrence.
func (r Recipe) ToDomain() *domain.Recipe {
	ingredients := domain.NewGroceryRegister()
	for _, i := range r.Ingredients {
		_ = ingredients.AddGrocery(domain.NewGrocery(i.GroceryName, i.Quantity, i.Unit, ""))
	}
	steps := domain.NewStepRegister()
	for _, s := range r.Steps {
		steps.AddStep(s)
	}
	rec := domain.NewRecipe(r.Name, ingredients, steps)
	rec.SetFavorite(r.IsFavorite)
	return rec
}
