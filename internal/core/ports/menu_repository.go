package ports

import (
	"context"

	"tableorders/internal/core/domain/model/menu"
)

// MenuRepository supplies read-only menu products.
type MenuRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown products.
	Get(ctx context.Context, productID string) (menu.Product, error)
	// List returns products in catalog order.
	List(ctx context.Context) ([]menu.Product, error)
}
