package queries

import (
	"context"
	"errors"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists every product on the menu.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// ProductView is a menu product.
type ProductView struct {
	ID       string
	Name     string
	Price    kernel.Money
	Category string
}

type GetMenuQueryHandler struct {
	menu ports.MenuRepository
}

func NewGetMenuQueryHandler(menu ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

// Handle returns products in catalog order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:       p.ID(),
			Name:     p.Name(),
			Price:    p.Price(),
			Category: p.Category(),
		})
	}
	return views, nil
}
