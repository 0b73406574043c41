package repository

// Shelf represents a pantry_shelf row.
type Shelf struct {
	ID       int64
	Name     string
	UserName string
}

// ShelfGrocery is a grocery on a shelf joined with its catalog unit.
type ShelfGrocery struct {
	Name     string
	Unit     string
	Quantity int
}

// ShoppingListItem represents a shopping_list_grocery row joined with its
// catalog unit.
type ShoppingListItem struct {
	GroceryName string
	UserName    string
	Quantity    int
	Unit        string
	IsBought    bool
	ShelfName   string
}

// Ingredient is one grocery line of a recipe.
type Ingredient struct {
	GroceryName string
	Unit        string
	Quantity    int
}

// Recipe represents a recipe row with its ingredients and steps in order.
type Recipe struct {
	Name        string
	UserName    string
	IsFavorite  bool
	Ingredients []Ingredient
	Steps       []string
}
