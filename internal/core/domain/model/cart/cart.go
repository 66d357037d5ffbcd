package cart

import (
	"errors"
	"slices"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the aggregate root for an in-progress selection.
type Cart struct {
	id      kernel.UUID
	lines   []Line
	version int

	isConstructed bool
}

// NewCart creates an empty cart.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		lines:         make([]Line, 0),
		isConstructed: true,
	}, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Version is the revision the cart was loaded at. Stores bump it on every save and
// reject saves of a stale revision.
func (c *Cart) Version() int {
	return c.version
}

// WithVersion returns a copy of the cart stamped with version.
func (c *Cart) WithVersion(version int) *Cart {
	clone := c.Clone()
	clone.version = version
	return clone
}

// AddProduct increments the quantity of the line for p, or appends a new line with
// quantity 1 capturing p's current name and price.
func (c *Cart) AddProduct(p menu.Product) {
	if i := c.indexOf(p.ID()); i >= 0 {
		c.lines[i].quantity++
		return
	}
	c.lines = append(c.lines, newLine(p))
}

// SetQuantity replaces the quantity of the line for productID. A quantity of zero or less
// removes the line. Absent products are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveProduct(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].quantity = quantity
	}
}

// RemoveProduct deletes the line for productID if present.
func (c *Cart) RemoveProduct(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// Consume takes quantity units of productID out of the cart, removing the line once
// nothing is left. Units added after an order snapshot was taken stay in the cart.
func (c *Cart) Consume(productID string, quantity int) {
	i := c.indexOf(productID)
	if i < 0 || quantity <= 0 {
		return
	}
	if c.lines[i].quantity <= quantity {
		c.lines = slices.Delete(c.lines, i, i+1)
		return
	}
	c.lines[i].quantity -= quantity
}

// Total is the sum of every line's subtotal; zero for an empty cart.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities across lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Line(productID string) (Line, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = make([]Line, 0)
}

// Clone returns an independent copy.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.lines = slices.Clone(c.lines)
	if clone.lines == nil {
		clone.lines = make([]Line, 0)
	}
	return &clone
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.lines, func(l Line) bool {
		return l.productID == productID
	})
}
