package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/observer"
)

// DefaultShelf is where bought groceries go when no shelf was named.
const DefaultShelf = "Pantry"

type shoppingKeys struct {
	Up       key.Binding
	Down     key.Binding
	Check    key.Binding
	Add      key.Binding
	Delete   key.Binding
	ToPantry key.Binding
}

// ShoppingListView lists groceries to buy with their checked state.
type ShoppingListView struct {
	observer.Observable
	keys      shoppingKeys
	groceries []*domain.Grocery
	cursor    int
	prompt    prompt
}

func NewShoppingListView() *ShoppingListView {
	return &ShoppingListView{keys: shoppingKeys{
		Up:       upKey,
		Down:     downKey,
		Check:    key.NewBinding(key.WithKeys(" ", "c"), key.WithHelp("space", "check")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		ToPantry: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "move checked to pantry")),
	}}
}

func (v *ShoppingListView) Route() Route  { return ShoppingList }
func (v *ShoppingListView) Title() string { return "Shopping list" }

func (v *ShoppingListView) Render(groceries []*domain.Grocery) {
	v.groceries = groceries
	v.cursor = clamp(v.cursor, len(groceries))
}

func (v *ShoppingListView) Capturing() bool { return v.prompt.active }

func (v *ShoppingListView) HandleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	if v.prompt.active {
		return v.prompt.handle(msg)
	}
	var current *domain.Grocery
	if v.cursor < len(v.groceries) {
		current = v.groceries[v.cursor]
	}
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, len(v.groceries))
	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, len(v.groceries))
	case key.Matches(msg, v.keys.Check) && current != nil:
		return nil, v.Notify(observer.Check, current)
	case key.Matches(msg, v.keys.Add):
		return v.prompt.open("Add to shopping list", "name qty unit @shelf", "", func(s string) error {
			in, err := parseGrocery(s)
			if err != nil {
				return err
			}
			if in.Shelf == "" {
				in.Shelf = DefaultShelf
			}
			return v.Notify(observer.Add, domain.NewGrocery(in.Name, in.Quantity, in.Unit, in.Shelf))
		}), nil
	case key.Matches(msg, v.keys.Delete) && current != nil:
		return nil, v.Notify(observer.Remove, current)
	case key.Matches(msg, v.keys.ToPantry):
		return nil, v.NotifySignal(observer.AddToPantry)
	}
	return nil, nil
}

func (v *ShoppingListView) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shopping list") + "\n")
	if len(v.groceries) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to buy. Press a to add a grocery.") + "\n")
	}
	for i, g := range v.groceries {
		box := "[ ]"
		if g.Checked() {
			box = "[x]"
		}
		text := fmt.Sprintf("%s %-20s %-10s %s", box, g.Name(), quantity(g.Quantity(), g.Unit()), mutedStyle.Render("→ "+g.Shelf()))
		b.WriteString(line(i == v.cursor, text) + "\n")
	}
	if v.prompt.active {
		b.WriteString("\n" + v.prompt.view())
	}
	return b.String()
}

func (v *ShoppingListView) Help() []HelpEntry {
	return helpOf(v.keys.Up, v.keys.Down, v.keys.Check, v.keys.Add, v.keys.Delete, v.keys.ToPantry)
}
