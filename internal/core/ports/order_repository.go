// Package ports defines the contracts between the table-orders core and its adapters.
// Adapters for storage, the menu source and event delivery implement these interfaces.
package ports

import (
	"context"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
)

// OrderRepository is the order store.
type OrderRepository interface {
	// Add persists a new order. An order with the same identifier must not exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change. It succeeds only if the stored version still equals
	// aggregate.Version(); otherwise it returns errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order, oldest first.
	List(ctx context.Context) ([]*order.Order, error)
}
