package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/errs"
)

// recipeFile is the TOML layout of a cookbook file:
//
//	[[recipe]]
//	name = "Pancakes"
//	favorite = true
//	steps = ["mix", "fry"]
//	  [[recipe.ingredient]]
//	  name = "flour"
//	  quantity = 200
//	  unit = "g"
type recipeFile struct {
	Recipes []recipeEntry `toml:"recipe"`
}

type recipeEntry struct {
	Name        string            `toml:"name"`
	Favorite    bool              `toml:"favorite,omitempty"`
	Steps       []string          `toml:"steps"`
	Ingredients []ingredientEntry `toml:"ingredient"`
}

type ingredientEntry struct {
	Name     string `toml:"name"`
	Quantity int    `toml:"quantity"`
	Unit     string `toml:"unit"`
}

// DecodeRecipes parses a cookbook file. Recipe names must be unique and
// non-empty; quantities must not be negative.
func DecodeRecipes(r io.Reader) (*domain.RecipeRegister, error) {
	var f recipeFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	out := domain.NewRecipeRegister()
	for i, e := range f.Recipes {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errs.Invalid("recipe %d: name is required", i+1)
		}
		ingredients := domain.NewGroceryRegister()
		for _, ing := range e.Ingredients {
			if ing.Quantity < 0 {
				return nil, errs.Invalid("recipe %q: negative quantity for %q", name, ing.Name)
			}
			unit := ing.Unit
			if unit == "" {
				unit = "g"
			}
			if err := ingredients.AddGrocery(domain.NewGrocery(ing.Name, ing.Quantity, unit, "")); err != nil {
				return nil, fmt.Errorf("recipe %q: %w", name, err)
			}
		}
		steps := domain.NewStepRegister()
		for _, s := range e.Steps {
			steps.AddStep(s)
		}
		rec := domain.NewRecipe(name, ingredients, steps)
		rec.SetFavorite(e.Favorite)
		if err := out.AddRecipe(rec); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", name, err)
		}
	}
	return out, nil
}

// EncodeRecipes writes recipes in register order.
func EncodeRecipes(w io.Writer, recipes *domain.RecipeRegister) error {
	var f recipeFile
	for rec := range recipes.All() {
		e := recipeEntry{Name: rec.Name(), Favorite: rec.Favorite(), Steps: rec.Steps().Texts()}
		for g := range rec.Ingredients().All() {
			e.Ingredients = append(e.Ingredients, ingredientEntry{Name: g.Name(), Quantity: g.Quantity(), Unit: g.Unit()})
		}
		f.Recipes = append(f.Recipes, e)
	}
	return toml.NewEncoder(w).Encode(f)
}

// RecipeService moves cookbook files in and out of the database.
type RecipeService struct {
	Recipes *repository.RecipeRepo
	Users   *repository.UserRepo
}

// Import saves every recipe in r for user, overwriting recipes of the same
// name, and returns how many were written.
func (s *RecipeService) Import(ctx context.Context, user string, r io.Reader) (int, error) {
	if strings.TrimSpace(user) == "" {
		return 0, errs.Invalid("import needs a user name")
	}
	recipes, err := DecodeRecipes(r)
	if err != nil {
		return 0, err
	}
	if err := s.Users.Ensure(ctx, user); err != nil {
		return 0, err
	}
	n := 0
	for rec := range recipes.All() {
		if err := s.Recipes.Save(ctx, repository.RecipeFromDomain(user, rec)); err != nil {
			return n, fmt.Errorf("save recipe %q: %w", rec.Name(), err)
		}
		n++
	}
	return n, nil
}

// Export writes every recipe of user to w.
func (s *RecipeService) Export(ctx context.Context, user string, w io.Writer) (int, error) {
	rows, err := s.Recipes.List(ctx, user)
	if err != nil {
		return 0, err
	}
	recipes := domain.NewRecipeRegister()
	for _, row := range rows {
		if err := recipes.AddRecipe(row.ToDomain()); err != nil {
			return 0, err
		}
	}
	return recipes.Len(), EncodeRecipes(w, recipes)
}
