package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pantrypal/internal/errs"
)

type recipeFixture struct {
	recipes   *RecipeRegister
	recipe    *Recipe
	groceries *GroceryRegister
	steps     *StepRegister
}

func newRecipeFixture(t *testing.T) recipeFixture {
	t.Helper()
	groceries := NewGroceryRegister()
	require.NoError(t, groceries.AddGrocery(NewGrocery("apple", 1, "fruit", "")))
	require.NoError(t, groceries.AddGrocery(NewGrocery("banana", 2, "fruit", "")))

	steps := NewStepRegister()
	steps.AddStep("Step 1")
	steps.AddStep("Step 2")

	recipe := NewRecipe("Apple Banana Smoothie", groceries, steps)
	recipes := NewRecipeRegister()
	require.NoError(t, recipes.AddRecipe(recipe))
	return recipeFixture{recipes: recipes, recipe: recipe, groceries: groceries, steps: steps}
}

func TestRecipeRegister(t *testing.T) {
	t.Run("lookup by name", func(t *testing.T) {
		f := newRecipeFixture(t)
		require.Equal(t, 1, f.recipes.Len())
		got, err := f.recipes.Recipe("Apple Banana Smoothie")
		require.NoError(t, err)
		require.Same(t, f.recipe, got)
	})

	t.Run("add recipe", func(t *testing.T) {
		f := newRecipeFixture(t)
		salad := NewRecipe("Fruit salad", f.groceries, f.steps)
		require.NoError(t, f.recipes.AddRecipe(salad))
		require.Equal(t, 2, f.recipes.Len())
		got, _ := f.recipes.Recipe("Fruit salad")
		require.Same(t, salad, got)
	})

	t.Run("add recipe from fields", func(t *testing.T) {
		f := newRecipeFixture(t)
		rec, err := f.recipes.AddRecipeFields("Fruit salad", f.groceries, f.steps)
		require.NoError(t, err)
		require.Equal(t, "Fruit salad", rec.Name())
		require.Equal(t, 2, f.recipes.Len())
	})

	t.Run("remove recipe", func(t *testing.T) {
		f := newRecipeFixture(t)
		require.NoError(t, f.recipes.RemoveRecipe("Apple Banana Smoothie"))
		require.False(t, f.recipes.ContainsRecipe("Apple Banana Smoothie"))
	})

	t.Run("update recipe in place", func(t *testing.T) {
		f := newRecipeFixture(t)
		require.NoError(t, f.recipes.AddRecipe(NewRecipe("Porridge", nil, nil)))
		f.steps.AddStep("Step 3")
		updated := NewRecipe("Apple Banana Smoothie", f.groceries, f.steps)
		require.NoError(t, f.recipes.UpdateRecipe(updated))
		require.Equal(t, 2, f.recipes.Len())
		got, _ := f.recipes.Recipe("Apple Banana Smoothie")
		require.Same(t, updated, got)
		require.Equal(t, []string{"Apple Banana Smoothie", "Porridge"}, f.recipes.Keys())
	})

	t.Run("update recipe from fields", func(t *testing.T) {
		f := newRecipeFixture(t)
		require.NoError(t, f.recipes.UpdateRecipeFields("Apple Banana Smoothie", f.groceries, f.steps))
		require.Equal(t, 1, f.recipes.Len())
	})

	t.Run("missing recipe", func(t *testing.T) {
		f := newRecipeFixture(t)
		_, err := f.recipes.Recipe("Fruit salad")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.EqualError(t, err, "Recipe does not exist in register")

		require.ErrorIs(t, f.recipes.RemoveRecipe("Fruit salad"), errs.ErrNotFound)
		require.ErrorIs(t, f.recipes.UpdateRecipe(NewRecipe("Fruit salad", nil, nil)), errs.ErrNotFound)
		require.ErrorIs(t, f.recipes.UpdateRecipeFields("Fruit salad", nil, nil), errs.ErrNotFound)
		require.Equal(t, 1, f.recipes.Len())
	})

	t.Run("duplicate recipe", func(t *testing.T) {
		f := newRecipeFixture(t)
		err := f.recipes.AddRecipe(f.recipe)
		require.ErrorIs(t, err, errs.ErrDuplicateKey)
		require.EqualError(t, err, "Recipe already exists in register")

		_, err = f.recipes.AddRecipeFields("Apple Banana Smoothie", f.groceries, f.steps)
		require.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("nil recipe", func(t *testing.T) {
		f := newRecipeFixture(t)
		require.ErrorIs(t, f.recipes.AddRecipe(nil), errs.ErrNullArgument)
		require.ErrorIs(t, f.recipes.UpdateRecipe(nil), errs.ErrNullArgument)
	})
}

func TestShelfOwnsGroceries(t *testing.T) {
	shelf := NewShelf("1", "Fridge")
	milk := NewGrocery("milk", 1, "l", "Fridge")
	require.NoError(t, shelf.AddGrocery(milk))
	require.ErrorIs(t, shelf.AddGrocery(NewGrocery("milk", 2, "l", "Fridge")), errs.ErrDuplicateKey)
	require.Equal(t, 1, shelf.Groceries().Len())

	require.NoError(t, shelf.RemoveGrocery(milk))
	require.Equal(t, 0, shelf.Groceries().Len())
	require.ErrorIs(t, shelf.RemoveGrocery(milk), errs.ErrNotFound)

	shelf.SetName("Cooler")
	require.Equal(t, "Cooler", shelf.Name())
	require.Equal(t, "1", shelf.Key())
}

func TestShelfRegisterByName(t *testing.T) {
	shelves := NewShelfRegister()
	require.NoError(t, shelves.AddShelf(NewShelf("1", "Fridge")))
	require.NoError(t, shelves.AddShelf(NewShelf("2", "Freezer")))

	s, err := shelves.ShelfByName("Freezer")
	require.NoError(t, err)
	require.Equal(t, "2", s.Key())
	require.True(t, shelves.ContainsShelfName("Fridge"))

	_, err = shelves.ShelfByName("Cellar")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.False(t, shelves.ContainsShelfName("Cellar"))
}

func TestStepOrderIsInsertionOrder(t *testing.T) {
	steps := NewStepRegister()
	first := steps.AddStep("chop")
	steps.AddStep("fry")
	steps.AddStep("serve")
	require.Equal(t, []string{"chop", "fry", "serve"}, steps.Texts())

	require.NoError(t, steps.RemoveStep(first))
	require.Equal(t, []string{"fry", "serve"}, steps.Texts())
}

func TestGroceryMutators(t *testing.T) {
	g := NewGrocery("egg", 6, "pcs", "Fridge")
	require.Equal(t, "egg", g.Key())
	require.False(t, g.Checked())

	g.SetQuantity(-1)
	require.Equal(t, -1, g.Quantity())
	g.SetChecked(true)
	g.SetShelf("Pantry")
	require.True(t, g.Checked())
	require.Equal(t, "Pantry", g.Shelf())

	c := g.Copy()
	c.SetQuantity(3)
	require.Equal(t, -1, g.Quantity())
	require.Equal(t, g.Key(), c.Key())
}

func TestGrocerySearch(t *testing.T) {
	groceries := NewGroceryRegister()
	for _, n := range []string{"Apple", "banana", "Avocado"} {
		require.NoError(t, groceries.AddGrocery(NewGrocery(n, 1, "pcs", "")))
	}
	var got []string
	for g := range groceries.SearchGroceries("a") {
		got = append(got, g.Name())
	}
	require.Equal(t, []string{"Apple", "banana", "Avocado"}, got)
}
