// Package cart provides the Cart aggregate: the selection a table is building before it
// is submitted as an order.
//
// A cart keeps at most one Line per product. Adding a product that is already present
// increments its quantity; setting a quantity of zero or less removes the line. Lines keep
// the order in which products were first added, and each line snapshots the product's
// name and price at the moment it was selected so later menu changes do not alter it.
//
// Cart is a plain value: it does no I/O, starts no goroutines and is not safe for
// concurrent mutation. Stores hand out clones and use Version to reject stale saves.
package cart
