// Package queries contains read-only operations over carts, orders and the menu.
// Handlers return view structs that adapters render without touching aggregates.
package queries

import (
	"context"
	"time"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
}

// OrderLineView is one line of an order.
type OrderLineView struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
}

// OrderView is the serialized shape of an order:
// { id, tableNumber, lines: [{productId, name, unitPrice, quantity}], total, status, createdAt }.
type OrderView struct {
	ID          kernel.UUID
	TableNumber int
	Lines       []OrderLineView
	Total       kernel.Money
	Status      order.Status
	CreatedAt   time.Time
}

// NewOrderView renders an order snapshot.
func NewOrderView(s order.Snapshot) OrderView {
	lines := make([]OrderLineView, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, OrderLineView{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice(),
			Quantity:  l.Quantity(),
		})
	}

	return OrderView{
		ID:          s.ID,
		TableNumber: s.Table.Int(),
		Lines:       lines,
		Total:       s.Total,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o.Snapshot()))
	}
	return views
}

// CartLineView is one line of a cart.
type CartLineView struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}

// CartView is a cart with its derived total and item count.
type CartView struct {
	ID        kernel.UUID
	Lines     []CartLineView
	Total     kernel.Money
	ItemCount int
}

func newCartView(c *cart.Cart) CartView {
	cartLines := c.Lines()
	lines := make([]CartLineView, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, CartLineView{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice(),
			Quantity:  l.Quantity(),
			Subtotal:  l.Subtotal(),
		})
	}

	return CartView{
		ID:        c.ID(),
		Lines:     lines,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
