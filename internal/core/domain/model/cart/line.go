package cart

import (
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
)

// Line is one product's selection within a cart.
type Line struct {
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int
}

func newLine(p menu.Product) Line {
	return Line{
		productID: p.ID(),
		name:      p.Name(),
		unitPrice: p.Price(),
		quantity:  1,
	}
}

func (l Line) ProductID() string {
	return l.productID
}

// Name is the product name captured when the line was created.
func (l Line) Name() string {
	return l.name
}

// UnitPrice is the product price captured when the line was created.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal is UnitPrice multiplied by Quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
