package queries

import (
	"context"
	"errors"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery loads one cart.
type GetCartQuery struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

// GetCartQueryHandler reads carts from the cart store.
type GetCartQueryHandler struct {
	carts ports.CartRepository
}

func NewGetCartQueryHandler(carts ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle returns errs.ObjectNotFoundError for unknown carts.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	c, err := h.carts.Get(ctx, query.CartID())
	if err != nil {
		return CartView{}, err
	}

	return newCartView(c), nil
}
