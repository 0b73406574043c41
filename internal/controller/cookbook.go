package controller

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/observer"
	"github.com/jask/pantrypal/internal/view"
)

// RecipeStore persists recipes with their ingredients and steps.
type RecipeStore interface {
	List(ctx context.Context, user string) ([]repository.Recipe, error)
	Save(ctx context.Context, rec repository.Recipe) error
	SetFavorite(ctx context.Context, user, name string, favorite bool) error
	Delete(ctx context.Context, user, name string) error
}

// ShoppingListSink takes groceries onto the shopping list, merging by name.
type ShoppingListSink interface {
	AddGrocery(ctx context.Context, g *domain.Grocery) error
}

type CookbookRenderer interface {
	Render(data view.CookbookData)
}

// CookbookController manages recipes and the current recipe search.
type CookbookController struct {
	base
	store    RecipeStore
	shopping ShoppingListSink
	view     CookbookRenderer
	register *domain.RecipeRegister
	search   string
	named    int
}

func NewCookbookController(d Deps, store RecipeStore, shopping ShoppingListSink, v CookbookRenderer) *CookbookController {
	return &CookbookController{
		base:     newBase("cookbook", d),
		store:    store,
		shopping: shopping,
		view:     v,
		register: domain.NewRecipeRegister(),
	}
}

func (c *CookbookController) render() {
	if c.view != nil {
		c.view.Render(view.CookbookData{Search: c.search, Recipes: c.CurrentSearch()})
	}
}

func (c *CookbookController) Load(ctx context.Context) error {
	if !c.online() {
		c.render()
		return nil
	}
	rows, err := c.store.List(ctx, c.user())
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}
	reg := domain.NewRecipeRegister()
	for _, row := range rows {
		if err := reg.AddRecipe(row.ToDomain()); err != nil {
			return err
		}
	}
	c.register = reg
	c.render()
	return nil
}

func (c *CookbookController) Reset() {
	c.register = domain.NewRecipeRegister()
	c.search = ""
	c.render()
}

func (c *CookbookController) Register() *domain.RecipeRegister { return c.register }

func (c *CookbookController) save(ctx context.Context, rec *domain.Recipe) error {
	if !c.online() {
		return nil
	}
	if err := c.store.Save(ctx, repository.RecipeFromDomain(c.user(), rec)); err != nil {
		return fmt.Errorf("save recipe %q: %w", rec.Name(), err)
	}
	return nil
}

// recipe looks name up and suggests a close match when it is missing.
func (c *CookbookController) recipe(name string) (*domain.Recipe, error) {
	rec, err := c.register.Recipe(name)
	if errors.Is(err, errs.ErrNotFound) {
		if s, ok := c.register.Suggest(name); ok {
			return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
		}
	}
	return rec, err
}

func (c *CookbookController) AddRecipe(ctx context.Context, rec *domain.Recipe) error {
	if rec == nil {
		return errs.Null("Recipe")
	}
	if strings.TrimSpace(rec.Name()) == "" {
		return errs.Invalid("recipe name is required")
	}
	if err := c.register.AddRecipe(rec); err != nil {
		return err
	}
	if err := c.save(ctx, rec); err != nil {
		_ = c.register.RemoveRecipe(rec.Name())
		return err
	}
	c.render()
	return nil
}

// UpdateRecipe replaces the recipe with the same name.
func (c *CookbookController) UpdateRecipe(ctx context.Context, rec *domain.Recipe) error {
	if err := c.register.UpdateRecipe(rec); err != nil {
		return err
	}
	c.render()
	return c.save(ctx, rec)
}

func (c *CookbookController) DeleteRecipe(ctx context.Context, name string) error {
	if _, err := c.recipe(name); err != nil {
		return err
	}
	if err := c.register.RemoveRecipe(name); err != nil {
		return err
	}
	c.render()
	if !c.online() {
		return nil
	}
	if err := c.store.Delete(ctx, c.user(), name); err != nil {
		return fmt.Errorf("delete recipe %q: %w", name, err)
	}
	return nil
}

func (c *CookbookController) ToggleFavorite(ctx context.Context, name string) error {
	rec, err := c.recipe(name)
	if err != nil {
		return err
	}
	rec.ToggleFavorite()
	c.render()
	if !c.online() {
		return nil
	}
	if err := c.store.SetFavorite(ctx, c.user(), name, rec.Favorite()); err != nil {
		return fmt.Errorf("favorite recipe %q: %w", name, err)
	}
	return nil
}

// SearchRecipes sets the current search and returns its result.
func (c *CookbookController) SearchRecipes(query string) []*domain.Recipe {
	c.search = strings.TrimSpace(query)
	c.render()
	return c.CurrentSearch()
}

// CurrentSearch returns the recipes matching the current search, favorites
// first and otherwise in register order.
func (c *CookbookController) CurrentSearch() []*domain.Recipe {
	out := slices.Collect(c.register.SearchRecipes(c.search))
	slices.SortStableFunc(out, func(a, b *domain.Recipe) int {
		return cmp.Compare(rank(a), rank(b))
	})
	return out
}

func rank(r *domain.Recipe) int {
	if r.Favorite() {
		return 0
	}
	return 1
}

// AddRecipeToShoppingList puts every ingredient of the recipe on the
// shopping list.
func (c *CookbookController) AddRecipeToShoppingList(ctx context.Context, name string) error {
	rec, err := c.recipe(name)
	if err != nil {
		return err
	}
	var errList []error
	for ing := range rec.Ingredients().All() {
		g := ing.Copy()
		g.SetChecked(false)
		if g.Shelf() == "" {
			g.SetShelf(view.DefaultShelf)
		}
		if err := c.shopping.AddGrocery(ctx, g); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// AddIngredient adds g to the recipe, merging quantities by name.
func (c *CookbookController) AddIngredient(ctx context.Context, recipe string, g *domain.Grocery) error {
	if g == nil {
		return errs.Null("Grocery")
	}
	if g.Quantity() < 0 {
		return errs.Invalid("quantity of %s cannot be negative", g.Name())
	}
	rec, err := c.recipe(recipe)
	if err != nil {
		return err
	}
	ingredients := rec.Ingredients()
	if ingredients.ContainsGrocery(g.Name()) {
		existing, err := ingredients.Grocery(g.Name())
		if err != nil {
			return err
		}
		existing.SetQuantity(existing.Quantity() + g.Quantity())
	} else {
		ing := g.Copy()
		ing.SetShelf("")
		if err := ingredients.AddGrocery(ing); err != nil {
			return err
		}
	}
	c.render()
	return c.save(ctx, rec)
}

// AddStep appends an instruction to the recipe.
func (c *CookbookController) AddStep(ctx context.Context, recipe, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.Invalid("step text is required")
	}
	rec, err := c.recipe(recipe)
	if err != nil {
		return err
	}
	rec.Steps().AddStep(text)
	c.render()
	return c.save(ctx, rec)
}

// RenameRecipe re-keys the recipe under name, keeping its ingredients, steps
// and favorite flag.
func (c *CookbookController) RenameRecipe(ctx context.Context, old, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Invalid("recipe name is required")
	}
	rec, err := c.recipe(old)
	if err != nil {
		return err
	}
	if name == old {
		return nil
	}
	if c.register.ContainsRecipe(name) {
		return errs.Duplicate("Recipe already exists in register")
	}
	renamed := domain.NewRecipe(name, rec.Ingredients(), rec.Steps())
	renamed.SetFavorite(rec.Favorite())
	if err := c.save(ctx, renamed); err != nil {
		return err
	}
	if err := c.register.RemoveRecipe(old); err != nil {
		return err
	}
	if err := c.register.AddRecipe(renamed); err != nil {
		return err
	}
	c.render()
	if !c.online() {
		return nil
	}
	if err := c.store.Delete(ctx, c.user(), old); err != nil {
		return fmt.Errorf("delete renamed recipe %q: %w", old, err)
	}
	return nil
}

// newRecipe adds an empty recipe named "New Recipe N".
func (c *CookbookController) newRecipe(ctx context.Context) (*domain.Recipe, error) {
	var name string
	for name == "" || c.register.ContainsRecipe(name) {
		c.named++
		name = fmt.Sprintf("New Recipe %d", c.named)
	}
	rec := domain.NewRecipe(name, nil, nil)
	return rec, c.AddRecipe(ctx, rec)
}

func (c *CookbookController) Update(action observer.Action, payload any) error {
	ctx := dispatchCtx()
	switch p := payload.(type) {
	case *domain.Recipe:
		switch action {
		case observer.Favorite:
			return c.swallow(action, c.ToggleFavorite(ctx, p.Name()))
		case observer.AddToShoppingList:
			return c.swallow(action, c.AddRecipeToShoppingList(ctx, p.Name()))
		case observer.Remove:
			return c.swallow(action, c.DeleteRecipe(ctx, p.Name()))
		}
	case string:
		switch action {
		case observer.Search:
			c.SearchRecipes(p)
			return nil
		case observer.Add:
			if strings.TrimSpace(p) == "" {
				_, err := c.newRecipe(ctx)
				return c.swallow(action, err)
			}
			return c.swallow(action, c.AddRecipe(ctx, domain.NewRecipe(strings.TrimSpace(p), nil, nil)))
		}
	case view.RecipeRename:
		if action == observer.Edit {
			return c.swallow(action, c.RenameRecipe(ctx, p.Recipe, p.Name))
		}
	case view.IngredientInput:
		if action == observer.Edit {
			return c.swallow(action, c.AddIngredient(ctx, p.Recipe, p.Grocery))
		}
	case view.StepInput:
		if action == observer.Edit {
			return c.swallow(action, c.AddStep(ctx, p.Recipe, p.Text))
		}
	}
	return errs.Unsupported("cookbook cannot handle %s with %T", action, payload)
}

func (c *CookbookController) Signal(action observer.Action) error {
	if action == observer.Add {
		_, err := c.newRecipe(dispatchCtx())
		return c.swallow(action, err)
	}
	return errs.Unsupported("cookbook cannot handle %s", action)
}
