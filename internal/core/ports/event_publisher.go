package ports

import (
	"context"

	"tableorders/internal/core/domain/model/order"
)

// EventPublisher delivers order domain events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.DomainEvent) error
}
