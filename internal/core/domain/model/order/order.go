package order

import (
	"errors"
	"slices"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for an Order that was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a submitted cart bound to a table.
//
// Invariants:
//   - identifier, table and createdAt are set once at creation
//   - at least one line; total equals the sum of line subtotals
//   - status only moves one step forward at a time, Delivered is terminal
//
// Order records DomainEvents for every change; the unit of work publishes them after commit.
type Order struct {
	id        kernel.UUID
	table     kernel.TableNumber
	lines     []Line
	total     kernel.Money
	createdAt time.Time
	status    Status

	// version is the persisted revision used for optimistic concurrency.
	version int

	events []DomainEvent

	isConstructed bool
}

// NewOrder creates a Pending order and records OrderPlaced.
//
//	o, err := order.NewOrder(kernel.NewUUID(), table, lines, time.Now())
func NewOrder(id kernel.UUID, table kernel.TableNumber, lines []Line, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}
	o.total = sumLines(o.lines)

	o.raise(OrderPlaced{snapshot: o.Snapshot()})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	table kernel.TableNumber,
	lines []Line,
	createdAt time.Time,
	status Status,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}
	o.total = sumLines(o.lines)

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Table() kernel.TableNumber {
	return o.table
}

// Lines returns a copy of the line snapshots.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Version() int {
	return o.version
}

// Advance moves the order to target, which must be the immediate successor of the current
// status. On failure the order is left unchanged.
func (o *Order) Advance(target Status) error {
	from := o.status
	if err := from.CanAdvanceTo(target); err != nil {
		return err
	}

	o.status = target
	o.raise(OrderStatusChanged{
		snapshot:  o.Snapshot(),
		from:      from,
		changedAt: time.Now().UTC(),
	})
	return nil
}

// Snapshot copies the current state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:        o.id,
		Table:     o.table,
		Lines:     slices.Clone(o.lines),
		Total:     o.total,
		Status:    o.status,
		CreatedAt: o.createdAt,
	}
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTable(table kernel.TableNumber) error {
	if err := table.Validate(); err != nil {
		return err
	}
	o.table = table
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumLines(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
