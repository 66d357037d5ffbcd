// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - Checkout: the gate that turns a cart and a table number into a new order
package services
