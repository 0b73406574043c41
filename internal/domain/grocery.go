package domain

// Grocery is a named, quantified item on a shelf, in a recipe or on the
// shopping list. The name is its key.
type Grocery struct {
	Model
	name     string
	quantity int
	unit     string
	shelf    string
	checked  bool
}

// NewGrocery builds an unchecked grocery. shelf names the owning shelf, or
// the shelf the item should land on when bought.
func NewGrocery(name string, quantity int, unit, shelf string) *Grocery {
	return &Grocery{Model: newModel(name), name: name, quantity: quantity, unit: unit, shelf: shelf}
}

// NewCheckedGrocery is NewGrocery with an explicit checked flag.
func NewCheckedGrocery(name string, quantity int, unit, shelf string, checked bool) *Grocery {
	g := NewGrocery(name, quantity, unit, shelf)
	g.checked = checked
	return g
}

func (g *Grocery) Name() string  { return g.name }
func (g *Grocery) Quantity() int { return g.quantity }
func (g *Grocery) Unit() string  { return g.unit }
func (g *Grocery) Shelf() string { return g.shelf }
func (g *Grocery) Checked() bool { return g.checked }

// SetQuantity does not validate; controllers reject negative amounts before
// they reach the model.
func (g *Grocery) SetQuantity(q int)    { g.quantity = q }
func (g *Grocery) SetChecked(c bool)    { g.checked = c }
func (g *Grocery) SetShelf(name string) { g.shelf = name }

// Copy returns a detached grocery with the same fields.
func (g *Grocery) Copy() *Grocery {
	c := *g
	return &c
}
