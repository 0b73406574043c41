// Package view holds the terminal views. Views render read models handed to
// them by controllers and report user actions through their Observable;
// they never call controllers directly.
package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/observer"
)

// Route names a screen of the application.
type Route string

const (
	Pantry       Route = "pantry"
	ShoppingList Route = "shopping_list"
	Cookbook     Route = "cookbook"
	Login        Route = "login"
)

// View is one screen hosted by the Manager.
type View interface {
	Route() Route
	Title() string
	Subscribe(obs observer.Observer) error
	SubscribeTo(obs observer.Observer, actions ...observer.Action) error
	Unsubscribe(obs observer.Observer) error
	// HandleKey processes a key press. The error is whatever the observers
	// returned for the resulting action.
	HandleKey(msg tea.KeyMsg) (tea.Cmd, error)
	// Capturing reports whether the view is collecting text input and wants
	// every key.
	Capturing() bool
	View(width int) string
	Help() []HelpEntry
}

// HelpEntry is one key hint for the footer.
type HelpEntry struct {
	Key  string
	Desc string
}

// ShelfRename is the payload of an Edit action from the pantry view.
type ShelfRename struct {
	Shelf *domain.Shelf
	Name  string
}

// RecipeRename is the payload of an Edit action renaming a recipe.
type RecipeRename struct {
	Recipe string
	Name   string
}

// IngredientInput is the payload of an Edit action adding an ingredient.
type IngredientInput struct {
	Recipe  string
	Grocery *domain.Grocery
}

// StepInput is the payload of an Edit action appending a step.
type StepInput struct {
	Recipe string
	Text   string
}

// Manager routes between views. Routes keep the order views were added in.
type Manager struct {
	views   map[Route]View
	order   []Route
	current Route
}

func NewManager() *Manager {
	return &Manager{views: make(map[Route]View)}
}

// AddView registers v under its route, replacing any earlier view there. The
// first view added becomes current.
func (m *Manager) AddView(v View) {
	r := v.Route()
	if _, ok := m.views[r]; !ok {
		m.order = append(m.order, r)
	}
	m.views[r] = v
	if m.current == "" {
		m.current = r
	}
}

func (m *Manager) SetView(r Route) error {
	if _, ok := m.views[r]; !ok {
		return errs.NotFound("no view for route %q", r)
	}
	m.current = r
	return nil
}

// Current returns the active view, nil when no view was added.
func (m *Manager) Current() View { return m.views[m.current] }

func (m *Manager) CurrentRoute() Route { return m.current }

func (m *Manager) View(r Route) (View, bool) {
	v, ok := m.views[r]
	return v, ok
}

func (m *Manager) Routes() []Route { return append([]Route(nil), m.order...) }

// Step moves the current route by delta positions, wrapping around.
func (m *Manager) Step(delta int) {
	if len(m.order) == 0 {
		return
	}
	idx := 0
	for i, r := range m.order {
		if r == m.current {
			idx = i
		}
	}
	n := len(m.order)
	m.current = m.order[((idx+delta)%n+n)%n]
}
