package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/observer"
)

// ShoppingStore persists a user's shopping list.
type ShoppingStore interface {
	List(ctx context.Context, user string) ([]repository.ShoppingListItem, error)
	Exists(ctx context.Context, user, name string) (bool, error)
	Insert(ctx context.Context, item repository.ShoppingListItem) error
	AddQuantity(ctx context.Context, user, name string, delta int) error
	SetQuantity(ctx context.Context, user, name string, quantity int) error
	SetBought(ctx context.Context, user, name string, bought bool) error
	Delete(ctx context.Context, user, name string) error
}

// PantrySink commits a grocery to the pantry shelf with the given name.
type PantrySink interface {
	AddGroceryToShelfNamed(ctx context.Context, shelfName, name string, amount int, unit string) (*domain.Grocery, error)
}

type ShoppingListRenderer interface {
	Render(groceries []*domain.Grocery)
}

// ShoppingListController manages the groceries still to buy.
type ShoppingListController struct {
	base
	store    ShoppingStore
	catalog  Catalog
	pantry   PantrySink
	view     ShoppingListRenderer
	register *domain.GroceryRegister
}

func NewShoppingListController(d Deps, store ShoppingStore, catalog Catalog, pantry PantrySink, v ShoppingListRenderer) *ShoppingListController {
	return &ShoppingListController{
		base:     newBase("shopping_list", d),
		store:    store,
		catalog:  catalog,
		pantry:   pantry,
		view:     v,
		register: domain.NewGroceryRegister(),
	}
}

func (c *ShoppingListController) render() {
	if c.view != nil {
		c.view.Render(c.Groceries())
	}
}

func (c *ShoppingListController) Load(ctx context.Context) error {
	if !c.online() {
		c.render()
		return nil
	}
	items, err := c.store.List(ctx, c.user())
	if err != nil {
		return fmt.Errorf("load shopping list: %w", err)
	}
	reg := domain.NewGroceryRegister()
	for _, it := range items {
		if err := reg.AddGrocery(domain.NewCheckedGrocery(it.GroceryName, it.Quantity, it.Unit, it.ShelfName, it.IsBought)); err != nil {
			return err
		}
	}
	c.register = reg
	c.render()
	return nil
}

func (c *ShoppingListController) Reset() {
	c.register = domain.NewGroceryRegister()
	c.render()
}

func (c *ShoppingListController) Register() *domain.GroceryRegister { return c.register }

func (c *ShoppingListController) Groceries() []*domain.Grocery { return c.register.Values() }

// AddGrocery merges g into the entry with the same name or adds it.
func (c *ShoppingListController) AddGrocery(ctx context.Context, g *domain.Grocery) error {
	if g == nil {
		return errs.Null("Grocery")
	}
	name := strings.TrimSpace(g.Name())
	if name == "" {
		return errs.Invalid("grocery name is required")
	}
	if g.Quantity() < 0 {
		return errs.Invalid("quantity of %s cannot be negative", name)
	}

	if c.register.ContainsGrocery(name) {
		existing, err := c.register.Grocery(name)
		if err != nil {
			return err
		}
		total := existing.Quantity() + g.Quantity()
		if c.online() {
			if err := c.store.SetQuantity(ctx, c.user(), name, total); err != nil {
				return fmt.Errorf("update %s on shopping list: %w", name, err)
			}
		}
		existing.SetQuantity(total)
		c.render()
		return nil
	}

	if name != g.Name() {
		g = domain.NewCheckedGrocery(name, g.Quantity(), g.Unit(), g.Shelf(), g.Checked())
	}
	if c.online() {
		if err := c.persistNew(ctx, g); err != nil {
			return fmt.Errorf("add %s to shopping list: %w", name, err)
		}
	}
	if err := c.register.AddGrocery(g); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *ShoppingListController) persistNew(ctx context.Context, g *domain.Grocery) error {
	if err := c.catalog.Ensure(ctx, g.Name(), g.Unit()); err != nil {
		return err
	}
	ok, err := c.store.Exists(ctx, c.user(), g.Name())
	if err != nil {
		return err
	}
	if ok {
		return c.store.AddQuantity(ctx, c.user(), g.Name(), g.Quantity())
	}
	return c.store.Insert(ctx, repository.ShoppingListItem{
		GroceryName: g.Name(),
		UserName:    c.user(),
		Quantity:    g.Quantity(),
		Unit:        g.Unit(),
		IsBought:    g.Checked(),
		ShelfName:   g.Shelf(),
	})
}

func (c *ShoppingListController) RemoveGrocery(ctx context.Context, g *domain.Grocery) error {
	if g == nil {
		return errs.Null("Grocery")
	}
	if _, err := c.register.Grocery(g.Name()); err != nil {
		return err
	}
	if c.online() {
		if err := c.store.Delete(ctx, c.user(), g.Name()); err != nil {
			return fmt.Errorf("remove %s from shopping list: %w", g.Name(), err)
		}
	}
	if err := c.register.RemoveGrocery(g); err != nil {
		return err
	}
	c.render()
	return nil
}

// SetChecked marks the grocery called name as bought or not.
func (c *ShoppingListController) SetChecked(ctx context.Context, name string, checked bool) error {
	g, err := c.register.Grocery(name)
	if err != nil {
		return err
	}
	if c.online() {
		if err := c.store.SetBought(ctx, c.user(), name, checked); err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
	}
	g.SetChecked(checked)
	c.render()
	return nil
}

// AddGroceriesToPantry commits every checked grocery to its pantry shelf and
// takes it off the list. Items are moved one at a time: one that fails stays
// on the list and its error is part of the joined result.
func (c *ShoppingListController) AddGroceriesToPantry(ctx context.Context) error {
	var checked []*domain.Grocery
	for g := range c.register.All() {
		if g.Checked() {
			checked = append(checked, g)
		}
	}

	var errList []error
	moved := 0
	for _, g := range checked {
		if _, err := c.pantry.AddGroceryToShelfNamed(ctx, g.Shelf(), g.Name(), g.Quantity(), g.Unit()); err != nil {
			errList = append(errList, fmt.Errorf("move %s to pantry: %w", g.Name(), err))
			continue
		}
		if c.online() {
			if err := c.store.Delete(ctx, c.user(), g.Name()); err != nil {
				errList = append(errList, fmt.Errorf("remove %s from shopping list: %w", g.Name(), err))
				continue
			}
		}
		if err := c.register.RemoveGrocery(g); err != nil {
			errList = append(errList, err)
			continue
		}
		moved++
	}
	c.metrics.Moved(moved)
	c.render()
	if moved > 0 {
		c.log.Info("moved groceries to pantry", "count", moved, "failed", len(errList))
	}
	return errors.Join(errList...)
}

func (c *ShoppingListController) Update(action observer.Action, payload any) error {
	g, ok := payload.(*domain.Grocery)
	if ok {
		ctx := dispatchCtx()
		switch action {
		case observer.Add:
			return c.swallow(action, c.AddGrocery(ctx, g))
		case observer.Remove:
			return c.swallow(action, c.RemoveGrocery(ctx, g))
		case observer.Check:
			return c.swallow(action, c.SetChecked(ctx, g.Name(), !g.Checked()))
		}
	}
	return errs.Unsupported("shopping list cannot handle %s with %T", action, payload)
}

func (c *ShoppingListController) Signal(action observer.Action) error {
	if action == observer.AddToPantry {
		return c.swallow(action, c.AddGroceriesToPantry(dispatchCtx()))
	}
	return errs.Unsupported("shopping list cannot handle %s", action)
}
