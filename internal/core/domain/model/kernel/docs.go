// Package kernel holds the value objects shared by every aggregate of the table-orders domain:
//   - UUID: identifiers of carts and orders
//   - Money: non-negative decimal amounts for prices and totals
//   - TableNumber: the bounded table a placed order is served to
//   - ParseQuantity: the single entry point for quantity text typed by staff
//
// Values are immutable and safe for concurrent use.
package kernel
