package commands

import (
	"context"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/ports"
)

// CreateCartCommandHandler stores a new empty cart.
type CreateCartCommandHandler struct {
	carts ports.CartRepository
}

func NewCreateCartCommandHandler(carts ports.CartRepository) CreateCartCommandHandler {
	return CreateCartCommandHandler{carts: carts}
}

func (h CreateCartCommandHandler) Handle(ctx context.Context, cmd CreateCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := cart.NewCart(cmd.CartID())
	if err != nil {
		return err
	}

	return h.carts.Add(ctx, c)
}

// AddCartProductCommandHandler resolves the product on the menu and adds it to the cart.
// Unknown products and carts yield errs.ObjectNotFoundError.
type AddCartProductCommandHandler struct {
	carts ports.CartRepository
	menu  ports.MenuRepository
}

func NewAddCartProductCommandHandler(carts ports.CartRepository, menu ports.MenuRepository) AddCartProductCommandHandler {
	return AddCartProductCommandHandler{carts: carts, menu: menu}
}

func (h AddCartProductCommandHandler) Handle(ctx context.Context, cmd AddCartProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.menu.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	c.AddProduct(product)
	return h.carts.Save(ctx, c)
}

// SetCartLineQuantityCommandHandler applies a typed quantity to a cart line.
type SetCartLineQuantityCommandHandler struct {
	carts ports.CartRepository
}

func NewSetCartLineQuantityCommandHandler(carts ports.CartRepository) SetCartLineQuantityCommandHandler {
	return SetCartLineQuantityCommandHandler{carts: carts}
}

func (h SetCartLineQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartLineQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	c.SetQuantity(cmd.ProductID(), cmd.Quantity())
	return h.carts.Save(ctx, c)
}

// RemoveCartProductCommandHandler deletes a line from a cart.
type RemoveCartProductCommandHandler struct {
	carts ports.CartRepository
}

func NewRemoveCartProductCommandHandler(carts ports.CartRepository) RemoveCartProductCommandHandler {
	return RemoveCartProductCommandHandler{carts: carts}
}

func (h RemoveCartProductCommandHandler) Handle(ctx context.Context, cmd RemoveCartProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	c.RemoveProduct(cmd.ProductID())
	return h.carts.Save(ctx, c)
}

// DiscardCartCommandHandler removes a cart from the store.
type DiscardCartCommandHandler struct {
	carts ports.CartRepository
}

func NewDiscardCartCommandHandler(carts ports.CartRepository) DiscardCartCommandHandler {
	return DiscardCartCommandHandler{carts: carts}
}

func (h DiscardCartCommandHandler) Handle(ctx context.Context, cmd DiscardCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.Delete(ctx, cmd.CartID())
}
