package controller

import (
	"context"

	"github.com/jask/pantrypal/internal/database"
	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/observer"
	"github.com/jask/pantrypal/internal/view"
)

// Stores groups the persistence every controller needs.
type Stores struct {
	Shelves  ShelfStore
	Shopping ShoppingStore
	Recipes  RecipeStore
	Catalog  Catalog
	Users    UserStore
}

// NewStores builds the repository-backed stores over store.
func NewStores(store *database.Store) Stores {
	return Stores{
		Shelves:  repository.NewShelfRepo(store),
		Shopping: repository.NewShoppingListRepo(store),
		Recipes:  repository.NewRecipeRepo(store),
		Catalog:  repository.NewCatalogRepo(store),
		Users:    repository.NewUserRepo(store),
	}
}

// App is every controller together with the views it drives.
type App struct {
	Views        *view.Manager
	Pantry       *PantryController
	ShoppingList *ShoppingListController
	Cookbook     *CookbookController
	Login        *LoginController
}

// Wire creates the views and controllers and subscribes each controller to
// its view. The pantry also listens to the shopping list for moves.
func Wire(d Deps, s Stores) (*App, error) {
	pantryView := view.NewPantryView()
	shoppingView := view.NewShoppingListView()
	cookbookView := view.NewCookbookView()
	loginView := view.NewLoginView()

	a := &App{Views: view.NewManager()}
	a.Pantry = NewPantryController(d, s.Shelves, s.Catalog, pantryView)
	a.ShoppingList = NewShoppingListController(d, s.Shopping, s.Catalog, a.Pantry, shoppingView)
	a.Cookbook = NewCookbookController(d, s.Recipes, a.ShoppingList, cookbookView)
	a.Login = NewLoginController(d, s.Users, loginView, a.Pantry, a.ShoppingList, a.Cookbook)

	steps := []func() error{
		func() error { return pantryView.Subscribe(a.Pantry) },
		func() error { return shoppingView.Subscribe(a.ShoppingList) },
		func() error { return shoppingView.SubscribeTo(a.Pantry, observer.AddToPantry) },
		func() error { return cookbookView.Subscribe(a.Cookbook) },
		func() error { return loginView.Subscribe(a.Login) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	for _, v := range []view.View{pantryView, shoppingView, cookbookView, loginView} {
		a.Views.AddView(v)
	}
	return a, nil
}

// Start loads state for the session user, or renders empty guest views.
func (a *App) Start(ctx context.Context) error {
	a.Login.render()
	for _, l := range a.Login.loaders {
		if err := l.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}
