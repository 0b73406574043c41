package domain

// Shelf is a named group of groceries in the pantry. Its key is assigned
// (a persisted id or a locally generated one) so the name can change.
type Shelf struct {
	Model
	name      string
	groceries *GroceryRegister
}

func NewShelf(key, name string) *Shelf {
	return &Shelf{Model: newModel(key), name: name, groceries: NewGroceryRegister()}
}

func (s *Shelf) Name() string { return s.name }

func (s *Shelf) SetName(name string) { s.name = name }

// Groceries exposes the shelf's register for reads. Mutations go through
// AddGrocery and RemoveGrocery.
func (s *Shelf) Groceries() *GroceryRegister { return s.groceries }

func (s *Shelf) AddGrocery(g *Grocery) error { return s.groceries.AddGrocery(g) }

func (s *Shelf) RemoveGrocery(g *Grocery) error { return s.groceries.RemoveGrocery(g) }
