package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/observer"
)

type listKeys struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
}

func helpOf(bindings ...key.Binding) []HelpEntry {
	out := make([]HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return out
}

var (
	upKey   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	downKey = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
)

type pantryRow struct {
	shelf   *domain.Shelf
	grocery *domain.Grocery
}

// PantryView lists shelves with their groceries.
type PantryView struct {
	observer.Observable
	keys    listKeys
	shelves []*domain.Shelf
	rows    []pantryRow
	cursor  int
	prompt  prompt
}

func NewPantryView() *PantryView {
	return &PantryView{keys: listKeys{
		Up:     upKey,
		Down:   downKey,
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new shelf")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add grocery")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename shelf")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	}}
}

func (v *PantryView) Route() Route  { return Pantry }
func (v *PantryView) Title() string { return "Pantry" }

// Render replaces the shelves on screen.
func (v *PantryView) Render(shelves []*domain.Shelf) {
	v.shelves = shelves
	v.rows = v.rows[:0]
	for _, s := range shelves {
		v.rows = append(v.rows, pantryRow{shelf: s})
		for g := range s.Groceries().All() {
			v.rows = append(v.rows, pantryRow{shelf: s, grocery: g})
		}
	}
	v.cursor = clamp(v.cursor, len(v.rows))
}

func (v *PantryView) Capturing() bool { return v.prompt.active }

func (v *PantryView) selected() (pantryRow, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return pantryRow{}, false
	}
	return v.rows[v.cursor], true
}

func (v *PantryView) HandleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	if v.prompt.active {
		return v.prompt.handle(msg)
	}
	row, ok := v.selected()
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, len(v.rows))
	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, len(v.rows))
	case key.Matches(msg, v.keys.New):
		return nil, v.NotifySignal(observer.Add)
	case key.Matches(msg, v.keys.Add) && ok:
		shelf := row.shelf
		return v.prompt.open("Add to "+shelf.Name(), "name qty unit", "", func(s string) error {
			in, err := parseGrocery(s)
			if err != nil {
				return err
			}
			return v.Notify(observer.Add, domain.NewGrocery(in.Name, in.Quantity, in.Unit, shelf.Name()))
		}), nil
	case key.Matches(msg, v.keys.Rename) && ok:
		shelf := row.shelf
		return v.prompt.open("Rename shelf", "shelf name", shelf.Name(), func(s string) error {
			return v.Notify(observer.Edit, ShelfRename{Shelf: shelf, Name: s})
		}), nil
	case key.Matches(msg, v.keys.Delete) && ok:
		if row.grocery != nil {
			return nil, v.Notify(observer.Remove, row.grocery)
		}
		return nil, v.Notify(observer.Remove, row.shelf)
	}
	return nil, nil
}

func (v *PantryView) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pantry") + "\n")
	if len(v.rows) == 0 {
		b.WriteString(mutedStyle.Render("No shelves yet. Press n to add one.") + "\n")
	}
	for i, r := range v.rows {
		if r.grocery == nil {
			label := shelfStyle.Render(r.shelf.Name())
			b.WriteString(line(i == v.cursor, label) + mutedStyle.Render(fmt.Sprintf("  (%d)", r.shelf.Groceries().Len())) + "\n")
			continue
		}
		g := r.grocery
		b.WriteString(line(i == v.cursor, fmt.Sprintf("    %-20s %s", g.Name(), quantity(g.Quantity(), g.Unit()))) + "\n")
	}
	if v.prompt.active {
		b.WriteString("\n" + v.prompt.view())
	}
	return b.String()
}

func (v *PantryView) Help() []HelpEntry {
	return helpOf(v.keys.Up, v.keys.Down, v.keys.New, v.keys.Add, v.keys.Rename, v.keys.Delete)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
