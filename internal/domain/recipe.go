package domain

// Recipe is a named list of ingredients and ordered steps.
type Recipe struct {
	Model
	name        string
	ingredients *GroceryRegister
	steps       *StepRegister
	favorite    bool
}

// NewRecipe takes ownership of ingredients and steps. Nil registers are
// replaced by empty ones.
func NewRecipe(name string, ingredients *GroceryRegister, steps *StepRegister) *Recipe {
	if ingredients == nil {
		ingredients = NewGroceryRegister()
	}
	if steps == nil {
		steps = NewStepRegister()
	}
	return &Recipe{Model: newModel(name), name: name, ingredients: ingredients, steps: steps}
}

func (r *Recipe) Name() string                  { return r.name }
func (r *Recipe) Ingredients() *GroceryRegister { return r.ingredients }
func (r *Recipe) Steps() *StepRegister          { return r.steps }
func (r *Recipe) Favorite() bool                { return r.favorite }
func (r *Recipe) SetFavorite(f bool)            { r.favorite = f }
func (r *Recipe) ToggleFavorite()               { r.favorite = !r.favorite }
