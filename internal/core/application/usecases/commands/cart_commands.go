package commands

import (
	"errors"
	"strings"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

var (
	ErrCreateCartCommandIsNotConstructed = errors.New(
		"CreateCartCommand must be created via NewCreateCartCommand constructor",
	)
	ErrAddCartProductCommandIsNotConstructed = errors.New(
		"AddCartProductCommand must be created via NewAddCartProductCommand constructor",
	)
	ErrSetCartLineQuantityCommandIsNotConstructed = errors.New(
		"SetCartLineQuantityCommand must be created via NewSetCartLineQuantityCommand constructor",
	)
	ErrRemoveCartProductCommandIsNotConstructed = errors.New(
		"RemoveCartProductCommand must be created via NewRemoveCartProductCommand constructor",
	)
	ErrDiscardCartCommandIsNotConstructed = errors.New(
		"DiscardCartCommand must be created via NewDiscardCartCommand constructor",
	)
)

// CreateCartCommand opens an empty cart for a new ordering session.
type CreateCartCommand struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCartCommand(cartID kernel.UUID) (CreateCartCommand, error) {
	if err := cartID.Validate(); err != nil {
		return CreateCartCommand{}, err
	}
	return CreateCartCommand{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartCommandIsNotConstructed)
}

func (c CreateCartCommand) CartID() kernel.UUID {
	return c.cartID
}

// AddCartProductCommand adds one unit of a menu product to a cart.
type AddCartProductCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string

	guard guard.ConstructorGuard
}

func NewAddCartProductCommand(cartID kernel.UUID, productID string) (AddCartProductCommand, error) {
	cmd := AddCartProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setProductID(productID),
	); err != nil {
		return AddCartProductCommand{}, err
	}

	return cmd, nil
}

func (c AddCartProductCommand) Validate() error {
	return c.guard.Validate(ErrAddCartProductCommandIsNotConstructed)
}

func (c AddCartProductCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c AddCartProductCommand) ProductID() string {
	return c.productID
}

func (c *AddCartProductCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *AddCartProductCommand) setProductID(productID string) error {
	id, err := requireProductID(productID)
	c.productID = id
	return err
}

// SetCartLineQuantityCommand replaces the quantity of a cart line. A quantity of zero or
// less removes the line.
type SetCartLineQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewSetCartLineQuantityCommand parses quantityInput with kernel.ParseQuantity; text that
// is not an integer is rejected rather than replaced with a default.
func NewSetCartLineQuantityCommand(
	cartID kernel.UUID,
	productID string,
	quantityInput string,
) (SetCartLineQuantityCommand, error) {
	cmd := SetCartLineQuantityCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantityInput),
	); err != nil {
		return SetCartLineQuantityCommand{}, err
	}

	return cmd, nil
}

func (c SetCartLineQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartLineQuantityCommandIsNotConstructed)
}

func (c SetCartLineQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c SetCartLineQuantityCommand) ProductID() string {
	return c.productID
}

func (c SetCartLineQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetCartLineQuantityCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *SetCartLineQuantityCommand) setProductID(productID string) error {
	id, err := requireProductID(productID)
	c.productID = id
	return err
}

func (c *SetCartLineQuantityCommand) setQuantity(input string) error {
	quantity, err := kernel.ParseQuantity(input)
	if err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

// RemoveCartProductCommand deletes a cart line.
type RemoveCartProductCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string

	guard guard.ConstructorGuard
}

func NewRemoveCartProductCommand(cartID kernel.UUID, productID string) (RemoveCartProductCommand, error) {
	cmd := RemoveCartProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveCartProductCommand{}, err
	}

	return cmd, nil
}

func (c RemoveCartProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartProductCommandIsNotConstructed)
}

func (c RemoveCartProductCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c RemoveCartProductCommand) ProductID() string {
	return c.productID
}

func (c *RemoveCartProductCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *RemoveCartProductCommand) setProductID(productID string) error {
	id, err := requireProductID(productID)
	c.productID = id
	return err
}

// DiscardCartCommand drops a cart without submitting it.
type DiscardCartCommand struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDiscardCartCommand(cartID kernel.UUID) (DiscardCartCommand, error) {
	if err := cartID.Validate(); err != nil {
		return DiscardCartCommand{}, err
	}
	return DiscardCartCommand{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (c DiscardCartCommand) Validate() error {
	return c.guard.Validate(ErrDiscardCartCommandIsNotConstructed)
}

func (c DiscardCartCommand) CartID() kernel.UUID {
	return c.cartID
}

func requireProductID(productID string) (string, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return "", errs.NewValueIsRequiredError("productId")
	}
	return id, nil
}
