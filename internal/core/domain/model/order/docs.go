// Package order provides the Order aggregate and its fulfillment lifecycle.
//
// The package includes:
//   - Order: a submitted cart bound to a table, with line snapshots, total and status
//   - Status: the lifecycle Pending -> InPreparation -> Prepared -> Delivered
//   - DomainEvent: OrderPlaced and OrderStatusChanged, published after commit
//   - Board: counts per status, active orders and recent delivery history
//
// Key business rules:
//   - An order always has at least one line and a table within the venue's bounds
//   - Status only advances to its immediate successor; anything else is an
//     errs.IllegalTransitionError and leaves the order unchanged
//   - Delivered orders reject every further transition
package order
