package services

import (
	"errors"
	"time"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/errs"
)

// Checkout validates a cart and table number and materializes them into a Pending order.
// It is the only way a cart becomes an order. Checkout does not clear the cart: the caller
// does that once the order is stored.
//
// Rules, in order:
//   - an empty cart fails with ValidationError(EmptyCart), whatever the table number
//   - a table number outside [kernel.TableNumberMin, kernel.TableNumberMax] or not a number
//     fails with ValidationError(InvalidTable)
//
// Example:
//
//	checkout := services.NewCheckout()
//	o, err := checkout.PlaceOrder(c, 7, kernel.NewUUID(), time.Now())
//	if errs.IsValidationReason(err, errs.EmptyCart) {
//	    // ask the guest to pick something first
//	}
type Checkout struct{}

func NewCheckout() Checkout {
	return Checkout{}
}

// PlaceOrder builds an order for tableNumber from the cart's lines.
func (s Checkout) PlaceOrder(c *cart.Cart, tableNumber int, id kernel.UUID, now time.Time) (*order.Order, error) {
	return s.place(c, func() (kernel.TableNumber, error) {
		return kernel.NewTableNumber(tableNumber)
	}, id, now)
}

// PlaceOrderFromInput is PlaceOrder for table numbers typed as text.
func (s Checkout) PlaceOrderFromInput(c *cart.Cart, tableInput string, id kernel.UUID, now time.Time) (*order.Order, error) {
	return s.place(c, func() (kernel.TableNumber, error) {
		return kernel.ParseTableNumber(tableInput)
	}, id, now)
}

func (s Checkout) place(
	c *cart.Cart,
	tableNumber func() (kernel.TableNumber, error),
	id kernel.UUID,
	now time.Time,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, errs.NewValidationError(errs.EmptyCart)
	}

	table, err := tableNumber()
	if err != nil {
		return nil, errs.NewValidationErrorWithCause(errs.InvalidTable, err)
	}

	lines, err := snapshotLines(c)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, table, lines, now)
}

func snapshotLines(c *cart.Cart) ([]order.Line, error) {
	cartLines := c.Lines()
	lines := make([]order.Line, 0, len(cartLines))
	var errList []error
	for _, cl := range cartLines {
		l, err := order.NewLine(cl.ProductID(), cl.Name(), cl.UnitPrice(), cl.Quantity())
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, l)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lines, nil
}
