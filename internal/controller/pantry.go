package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/observer"
	"github.com/jask/pantrypal/internal/view"
)

// ShelfStore persists shelves and their groceries.
type ShelfStore interface {
	List(ctx context.Context, user string) ([]repository.Shelf, error)
	Create(ctx context.Context, name, user string) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	Groceries(ctx context.Context, shelfID int64) ([]repository.ShelfGrocery, error)
	AddGrocery(ctx context.Context, shelfID int64, name string, quantity int) error
	SetGroceryQuantity(ctx context.Context, shelfID int64, name string, quantity int) error
	DeleteGrocery(ctx context.Context, shelfID int64, name string) error
}

// Catalog makes sure a grocery name exists in the shared catalog.
type Catalog interface {
	Ensure(ctx context.Context, name, unit string) error
}

type PantryRenderer interface {
	Render(shelves []*domain.Shelf)
}

// PantryController manages the shelves of the pantry.
type PantryController struct {
	base
	shelves  ShelfStore
	catalog  Catalog
	view     PantryRenderer
	register *domain.ShelfRegister
	named    int // "New Shelf N" suffix, never reset
	local    int // key suffix for shelves created in guest mode
}

func NewPantryController(d Deps, shelves ShelfStore, catalog Catalog, v PantryRenderer) *PantryController {
	return &PantryController{
		base:     newBase("pantry", d),
		shelves:  shelves,
		catalog:  catalog,
		view:     v,
		register: domain.NewShelfRegister(),
	}
}

func (c *PantryController) render() {
	if c.view != nil {
		c.view.Render(c.Shelves())
	}
}

// Load replaces the register with the logged in user's shelves. In guest
// mode it keeps the in-memory state.
func (c *PantryController) Load(ctx context.Context) error {
	if !c.online() {
		c.render()
		return nil
	}
	rows, err := c.shelves.List(ctx, c.user())
	if err != nil {
		return fmt.Errorf("load shelves: %w", err)
	}
	reg := domain.NewShelfRegister()
	for _, row := range rows {
		shelf := domain.NewShelf(strconv.FormatInt(row.ID, 10), row.Name)
		shelf.ID = row.ID
		groceries, err := c.shelves.Groceries(ctx, row.ID)
		if err != nil {
			return fmt.Errorf("load shelf %q: %w", row.Name, err)
		}
		for _, g := range groceries {
			if err := shelf.AddGrocery(domain.NewGrocery(g.Name, g.Quantity, g.Unit, row.Name)); err != nil {
				return err
			}
		}
		if err := reg.AddShelf(shelf); err != nil {
			return err
		}
	}
	c.register = reg
	c.render()
	c.log.Debug("pantry loaded", "user", c.user(), "shelves", reg.Len())
	return nil
}

// Reset drops every shelf from memory.
func (c *PantryController) Reset() {
	c.register = domain.NewShelfRegister()
	c.render()
}

func (c *PantryController) Register() *domain.ShelfRegister { return c.register }

func (c *PantryController) Shelves() []*domain.Shelf { return c.register.Values() }

func (c *PantryController) Groceries(shelf *domain.Shelf) []*domain.Grocery {
	if shelf == nil {
		return nil
	}
	return shelf.Groceries().Values()
}

// AddShelf creates a shelf. An empty name becomes "New Shelf N".
func (c *PantryController) AddShelf(ctx context.Context, name string) (*domain.Shelf, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.named++
		name = fmt.Sprintf("New Shelf %d", c.named)
	}
	var shelf *domain.Shelf
	if c.online() {
		id, err := c.shelves.Create(ctx, name, c.user())
		if err != nil {
			return nil, fmt.Errorf("create shelf %q: %w", name, err)
		}
		shelf = domain.NewShelf(strconv.FormatInt(id, 10), name)
		shelf.ID = id
	} else {
		c.local++
		shelf = domain.NewShelf(fmt.Sprintf("local-%d", c.local), name)
	}
	if err := c.register.AddShelf(shelf); err != nil {
		return nil, err
	}
	c.render()
	return shelf, nil
}

// DeleteShelf removes shelf from memory and then from persistence.
func (c *PantryController) DeleteShelf(ctx context.Context, shelf *domain.Shelf) error {
	if shelf == nil {
		return errs.Null("Shelf")
	}
	if err := c.register.RemoveShelf(shelf); err != nil {
		return err
	}
	c.render()
	if !c.online() || shelf.ID == 0 {
		return nil
	}
	if err := c.shelves.Delete(ctx, shelf.ID); err != nil {
		return fmt.Errorf("delete shelf %q: %w", shelf.Name(), err)
	}
	return nil
}

func (c *PantryController) EditShelfName(ctx context.Context, shelf *domain.Shelf, name string) error {
	if shelf == nil {
		return errs.Null("Shelf")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Invalid("shelf name is required")
	}
	if !c.register.Contains(shelf.Key()) {
		return errs.NotFound("Shelf does not exist in register")
	}
	old := shelf.Name()
	shelf.SetName(name)
	for g := range shelf.Groceries().All() {
		g.SetShelf(name)
	}
	c.render()
	if !c.online() || shelf.ID == 0 {
		return nil
	}
	if err := c.shelves.Rename(ctx, shelf.ID, name); err != nil {
		return fmt.Errorf("rename shelf %q: %w", old, err)
	}
	return nil
}

// AddGrocery merges amount into the grocery called name on shelf, or adds
// it when the shelf has none.
func (c *PantryController) AddGrocery(ctx context.Context, shelf *domain.Shelf, name string, amount int, unit string) (*domain.Grocery, error) {
	if shelf == nil {
		return nil, errs.Null("Shelf")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Invalid("grocery name is required")
	}
	if amount < 0 {
		return nil, errs.Invalid("quantity of %s cannot be negative", name)
	}

	groceries := shelf.Groceries()
	if groceries.ContainsGrocery(name) {
		g, err := groceries.Grocery(name)
		if err != nil {
			return nil, err
		}
		total := g.Quantity() + amount
		if c.online() {
			if err := c.shelves.SetGroceryQuantity(ctx, shelf.ID, name, total); err != nil {
				return nil, fmt.Errorf("update %s on %q: %w", name, shelf.Name(), err)
			}
		}
		g.SetQuantity(total)
		c.render()
		return g, nil
	}

	if c.online() {
		if err := c.catalog.Ensure(ctx, name, unit); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		if err := c.shelves.AddGrocery(ctx, shelf.ID, name, amount); err != nil {
			return nil, fmt.Errorf("add %s to %q: %w", name, shelf.Name(), err)
		}
	}
	g := domain.NewGrocery(name, amount, unit, shelf.Name())
	if err := shelf.AddGrocery(g); err != nil {
		return nil, err
	}
	c.render()
	return g, nil
}

// AddGroceryToShelfNamed adds to the first shelf called shelfName, creating
// the shelf when there is none.
func (c *PantryController) AddGroceryToShelfNamed(ctx context.Context, shelfName, name string, amount int, unit string) (*domain.Grocery, error) {
	shelfName = strings.TrimSpace(shelfName)
	if shelfName == "" {
		shelfName = view.DefaultShelf
	}
	shelf, err := c.register.ShelfByName(shelfName)
	if errors.Is(err, errs.ErrNotFound) {
		shelf, err = c.AddShelf(ctx, shelfName)
	}
	if err != nil {
		return nil, err
	}
	return c.AddGrocery(ctx, shelf, name, amount, unit)
}

func (c *PantryController) DeleteGrocery(ctx context.Context, shelf *domain.Shelf, g *domain.Grocery) error {
	if shelf == nil {
		return errs.Null("Shelf")
	}
	if g == nil {
		return errs.Null("Grocery")
	}
	if err := shelf.RemoveGrocery(g); err != nil {
		return err
	}
	c.render()
	if !c.online() || shelf.ID == 0 {
		return nil
	}
	if err := c.shelves.DeleteGrocery(ctx, shelf.ID, g.Name()); err != nil {
		return fmt.Errorf("delete %s from %q: %w", g.Name(), shelf.Name(), err)
	}
	return nil
}

func (c *PantryController) Update(action observer.Action, payload any) error {
	ctx := dispatchCtx()
	switch p := payload.(type) {
	case *domain.Grocery:
		switch action {
		case observer.Add:
			_, err := c.AddGroceryToShelfNamed(ctx, p.Shelf(), p.Name(), p.Quantity(), p.Unit())
			return c.swallow(action, err)
		case observer.Remove:
			shelf, err := c.register.ShelfByName(p.Shelf())
			if err == nil {
				err = c.DeleteGrocery(ctx, shelf, p)
			}
			return c.swallow(action, err)
		}
	case *domain.Shelf:
		if action == observer.Remove {
			return c.swallow(action, c.DeleteShelf(ctx, p))
		}
	case view.ShelfRename:
		if action == observer.Edit {
			return c.swallow(action, c.EditShelfName(ctx, p.Shelf, p.Name))
		}
	}
	return errs.Unsupported("pantry cannot handle %s with %T", action, payload)
}

func (c *PantryController) Signal(action observer.Action) error {
	switch action {
	case observer.AddToPantry:
		c.render()
		return nil
	case observer.Add:
		_, err := c.AddShelf(dispatchCtx(), "")
		return c.swallow(action, err)
	}
	return errs.Unsupported("pantry cannot handle %s", action)
}
