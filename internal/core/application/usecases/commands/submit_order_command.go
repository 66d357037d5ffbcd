package commands

import (
	"errors"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand turns a cart into an order for the table typed by staff.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(cartID, orderID, "7")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // ValidationError, PersistenceError or ObjectNotFoundError
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	cartID     kernel.UUID
	orderID    kernel.UUID
	tableInput string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand keeps tableInput as typed: the table number is validated together
// with the cart by the handler, so an empty cart is reported first.
func NewSubmitOrderCommand(cartID, orderID kernel.UUID, tableInput string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		tableInput: tableInput,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setOrderID(orderID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) CartID() kernel.UUID {
	return c.cartID
}

// OrderID is the identifier the new order will get.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitOrderCommand) TableInput() string {
	return c.tableInput
}

func (c *SubmitOrderCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
