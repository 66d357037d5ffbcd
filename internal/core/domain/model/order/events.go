package order

import (
	"time"

	"tableorders/internal/core/domain/model/kernel"
)

const (
	OrderPlacedEventName        = "OrderPlaced"
	OrderStatusChangedEventName = "OrderStatusChanged"
)

// DomainEvent is a fact recorded by the Order aggregate. Events are collected by the unit of
// work and published after the transaction that produced them commits.
type DomainEvent interface {
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
	// Snapshot is the order state right after the event.
	Snapshot() Snapshot
}

// Snapshot is a read-only copy of an order's state.
type Snapshot struct {
	ID        kernel.UUID
	Table     kernel.TableNumber
	Lines     []Line
	Total     kernel.Money
	Status    Status
	CreatedAt time.Time
}

// OrderPlaced is recorded when an order is created from a cart.
type OrderPlaced struct {
	snapshot Snapshot
}

func (e OrderPlaced) EventName() string        { return OrderPlacedEventName }
func (e OrderPlaced) AggregateID() kernel.UUID { return e.snapshot.ID }
func (e OrderPlaced) OccurredAt() time.Time    { return e.snapshot.CreatedAt }
func (e OrderPlaced) Snapshot() Snapshot       { return e.snapshot }

// OrderStatusChanged is recorded on every successful Advance.
type OrderStatusChanged struct {
	snapshot  Snapshot
	from      Status
	changedAt time.Time
}

func (e OrderStatusChanged) EventName() string        { return OrderStatusChangedEventName }
func (e OrderStatusChanged) AggregateID() kernel.UUID { return e.snapshot.ID }
func (e OrderStatusChanged) OccurredAt() time.Time    { return e.changedAt }
func (e OrderStatusChanged) Snapshot() Snapshot       { return e.snapshot }

// From is the status the order left.
func (e OrderStatusChanged) From() Status { return e.from }
