package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pantrypal/internal/domain"
	"github.com/jask/pantrypal/internal/observer"
)

type cookbookKeys struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Search     key.Binding
	Clear      key.Binding
	New        key.Binding
	Rename     key.Binding
	Favorite   key.Binding
	Shop       key.Binding
	Ingredient key.Binding
	Step       key.Binding
	Delete     key.Binding
}

// CookbookData is what the cookbook view draws.
type CookbookData struct {
	Search  string
	Recipes []*domain.Recipe
}

// CookbookView lists recipes, favorites first, and shows the selected
// recipe's ingredients and steps when opened.
type CookbookView struct {
	observer.Observable
	keys   cookbookKeys
	data   CookbookData
	cursor int
	open   bool
	prompt prompt
}

func NewCookbookView() *CookbookView {
	return &CookbookView{keys: cookbookKeys{
		Up:         upKey,
		Down:       downKey,
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
		New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new recipe")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Shop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "to shopping list")),
		Ingredient: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add ingredient")),
		Step:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add step")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	}}
}

func (v *CookbookView) Route() Route  { return Cookbook }
func (v *CookbookView) Title() string { return "Cookbook" }

func (v *CookbookView) Render(data CookbookData) {
	v.data = data
	v.cursor = clamp(v.cursor, len(data.Recipes))
}

func (v *CookbookView) Capturing() bool { return v.prompt.active }

func (v *CookbookView) selected() *domain.Recipe {
	if v.cursor < len(v.data.Recipes) {
		return v.data.Recipes[v.cursor]
	}
	return nil
}

func (v *CookbookView) HandleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	if v.prompt.active {
		return v.prompt.handle(msg)
	}
	rec := v.selected()
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, len(v.data.Recipes))
	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, len(v.data.Recipes))
	case key.Matches(msg, v.keys.Open):
		v.open = !v.open
	case key.Matches(msg, v.keys.Search):
		return v.prompt.open("Search recipes", "name contains", v.data.Search, func(s string) error {
			return v.Notify(observer.Search, s)
		}), nil
	case key.Matches(msg, v.keys.Clear) && v.data.Search != "":
		return nil, v.Notify(observer.Search, "")
	case key.Matches(msg, v.keys.New):
		return v.prompt.open("New recipe", "recipe name", "", func(s string) error {
			return v.Notify(observer.Add, s)
		}), nil
	case key.Matches(msg, v.keys.Rename) && rec != nil:
		name := rec.Name()
		return v.prompt.open("Rename "+name, "recipe name", name, func(s string) error {
			return v.Notify(observer.Edit, RecipeRename{Recipe: name, Name: s})
		}), nil
	case key.Matches(msg, v.keys.Favorite) && rec != nil:
		return nil, v.Notify(observer.Favorite, rec)
	case key.Matches(msg, v.keys.Shop) && rec != nil:
		return nil, v.Notify(observer.AddToShoppingList, rec)
	case key.Matches(msg, v.keys.Ingredient) && rec != nil:
		name := rec.Name()
		return v.prompt.open("Ingredient for "+name, "name qty unit", "", func(s string) error {
			in, err := parseGrocery(s)
			if err != nil {
				return err
			}
			return v.Notify(observer.Edit, IngredientInput{Recipe: name, Grocery: domain.NewGrocery(in.Name, in.Quantity, in.Unit, in.Shelf)})
		}), nil
	case key.Matches(msg, v.keys.Step) && rec != nil:
		name := rec.Name()
		return v.prompt.open("Step for "+name, "instruction", "", func(s string) error {
			return v.Notify(observer.Edit, StepInput{Recipe: name, Text: s})
		}), nil
	case key.Matches(msg, v.keys.Delete) && rec != nil:
		return nil, v.Notify(observer.Remove, rec)
	}
	return nil, nil
}

func (v *CookbookView) View(width int) string {
	var b strings.Builder
	title := "Cookbook"
	if v.data.Search != "" {
		title += fmt.Sprintf(" (search: %q)", v.data.Search)
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	switch {
	case len(v.data.Recipes) > 0:
	case v.data.Search != "":
		b.WriteString(mutedStyle.Render("No recipes match. Press c to clear the search.") + "\n")
	default:
		b.WriteString(mutedStyle.Render("No recipes. Press n to add one.") + "\n")
	}
	for i, rec := range v.data.Recipes {
		star := " "
		if rec.Favorite() {
			star = favoriteStyle.Render("★")
		}
		b.WriteString(line(i == v.cursor, star+" "+rec.Name()) + "\n")
		if v.open && i == v.cursor {
			for g := range rec.Ingredients().All() {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("      - %s %s", quantity(g.Quantity(), g.Unit()), g.Name())) + "\n")
			}
			for n, s := range rec.Steps().Texts() {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("      %d. %s", n+1, s)) + "\n")
			}
		}
	}
	if v.prompt.active {
		b.WriteString("\n" + v.prompt.view())
	}
	return b.String()
}

func (v *CookbookView) Help() []HelpEntry {
	return helpOf(v.keys.Open, v.keys.Search, v.keys.Clear, v.keys.New, v.keys.Rename, v.keys.Favorite, v.keys.Shop, v.keys.Ingredient, v.keys.Step, v.keys.Delete)
}
