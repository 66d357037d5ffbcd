package ports

import (
	"context"
	"time"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
)

// CartRepository stores carts that are still being built. Implementations hand out copies,
// so a cart returned by Get is only visible to others after Save.
type CartRepository interface {
	Add(ctx context.Context, c *cart.Cart) error
	// Get returns errs.ObjectNotFoundError for unknown or discarded carts.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)
	// Save returns errs.ErrVersionIsInvalid when the cart changed since it was loaded.
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, id kernel.UUID) error
	// DeleteIdleSince removes carts not saved since cutoff and reports how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
