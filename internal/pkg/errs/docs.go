// Package errs provides the standardized error types for the campus services
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Input/validation failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or references nothing
//   - ValueIsOutOfRangeError: a value violates numeric bounds
//
// Lifecycle failures:
//   - ObjectNotFoundError: a fulfillment, menu item or user cannot be found
//   - ForbiddenError: the acting party lacks authority over an entity
//   - InvalidTransitionError: an illegal status move was requested
//   - StorageUnavailableError: the underlying store failed; this is the only
//     class callers may retry
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrForbidden), a struct with detail fields, constructors with and
// without a cause, an Error() formatter, and Unwrap() to the sentinel so
// errors.Is classification works everywhere.
package errs
