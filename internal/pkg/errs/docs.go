// Package errs provides standardized error types for the table orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic value errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an inclusive range
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionIsInvalidError: For when an aggregate was changed concurrently
//
// and the ordering taxonomy surfaced to callers:
//   - ValidationError (EmptyCart, InvalidTable): a cart cannot be submitted
//   - IllegalTransitionError: an order status change skips, repeats or regresses a step
//   - PersistenceError: the order store failed, nothing was applied
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
package errs
