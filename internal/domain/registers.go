package domain

import (
	"iter"

	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/register"
)

func errorsFor(kind string) register.ErrorFactory {
	return register.ErrorFactory{
		NotFound:  func(string) error { return errs.NotFound("%s does not exist in register", kind) },
		Duplicate: func(string) error { return errs.Duplicate("%s already exists in register", kind) },
	}
}

// GroceryRegister holds groceries keyed by name.
type GroceryRegister struct {
	*register.Register[*Grocery]
}

func NewGroceryRegister() *GroceryRegister {
	return &GroceryRegister{register.New[*Grocery](errorsFor("Grocery"))}
}

// Clone copies the register; the groceries are shared.
func (r *GroceryRegister) Clone() *GroceryRegister {
	return &GroceryRegister{r.Register.Clone()}
}

func (r *GroceryRegister) Grocery(name string) (*Grocery, error) { return r.Get(name) }

func (r *GroceryRegister) ContainsGrocery(name string) bool { return r.Contains(name) }

func (r *GroceryRegister) AddGrocery(g *Grocery) error {
	if g == nil {
		return errs.Null("Grocery")
	}
	return r.Add(g)
}

func (r *GroceryRegister) RemoveGrocery(g *Grocery) error {
	if g == nil {
		return errs.Null("Grocery")
	}
	return r.Remove(g)
}

func (r *GroceryRegister) SearchGroceries(sub string) iter.Seq[*Grocery] { return r.Search(sub) }

// ShelfRegister holds shelves keyed by their assigned key.
type ShelfRegister struct {
	*register.Register[*Shelf]
}

func NewShelfRegister() *ShelfRegister {
	return &ShelfRegister{register.New[*Shelf](errorsFor("Shelf"))}
}

func (r *ShelfRegister) Shelf(key string) (*Shelf, error) { return r.Get(key) }

func (r *ShelfRegister) AddShelf(s *Shelf) error {
	if s == nil {
		return errs.Null("Shelf")
	}
	return r.Add(s)
}

func (r *ShelfRegister) RemoveShelf(s *Shelf) error {
	if s == nil {
		return errs.Null("Shelf")
	}
	return r.Remove(s)
}

// ShelfByName returns the first shelf, in register order, called name.
func (r *ShelfRegister) ShelfByName(name string) (*Shelf, error) {
	for s := range r.All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errs.NotFound("Shelf does not exist in register")
}

func (r *ShelfRegister) ContainsShelfName(name string) bool {
	_, err := r.ShelfByName(name)
	return err == nil
}

// RecipeRegister holds recipes keyed by name.
type RecipeRegister struct {
	*register.Register[*Recipe]
}

func NewRecipeRegister() *RecipeRegister {
	return &RecipeRegister{register.New[*Recipe](errorsFor("Recipe"))}
}

func (r *RecipeRegister) Recipe(name string) (*Recipe, error) { return r.Get(name) }

func (r *RecipeRegister) ContainsRecipe(name string) bool { return r.Contains(name) }

func (r *RecipeRegister) AddRecipe(rec *Recipe) error {
	if rec == nil {
		return errs.Null("Recipe")
	}
	return r.Add(rec)
}

// AddRecipeFields builds and adds a recipe, returning it.
func (r *RecipeRegister) AddRecipeFields(name string, ingredients *GroceryRegister, steps *StepRegister) (*Recipe, error) {
	rec := NewRecipe(name, ingredients, steps)
	if err := r.Add(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *RecipeRegister) RemoveRecipe(name string) error { return r.RemoveKey(name) }

// UpdateRecipe replaces the recipe with the same name in place.
func (r *RecipeRegister) UpdateRecipe(rec *Recipe) error {
	if rec == nil {
		return errs.Null("Recipe")
	}
	return r.Replace(rec)
}

func (r *RecipeRegister) UpdateRecipeFields(name string, ingredients *GroceryRegister, steps *StepRegister) error {
	return r.Replace(NewRecipe(name, ingredients, steps))
}

func (r *RecipeRegister) SearchRecipes(sub string) iter.Seq[*Recipe] { return r.Search(sub) }

// StepRegister holds steps in instruction order.
type StepRegister struct {
	*register.Register[*Step]
}

func NewStepRegister() *StepRegister {
	return &StepRegister{register.New[*Step](errorsFor("Step"))}
}

// AddStep appends a new step and returns it.
func (r *StepRegister) AddStep(text string) *Step {
	s := NewStep(text)
	// Generated keys never collide.
	_ = r.Add(s)
	return s
}

func (r *StepRegister) RemoveStep(s *Step) error {
	if s == nil {
		return errs.Null("Step")
	}
	return r.Remove(s)
}

// Texts returns the instructions in order.
func (r *StepRegister) Texts() []string {
	out := make([]string, 0, r.Len())
	for s := range r.All() {
		out = append(out, s.Text())
	}
	return out
}
