// Package fulfillment provides the domain model for the order lifecycle of
// the campus services system. A single Fulfillment aggregate covers both
// canteen food orders and print-shop jobs; the two kinds differ only in their
// payload and in how their fulfiller is addressed.
//
// The package includes:
//   - Fulfillment: the aggregate root holding payload, amount due, paid flag,
//     pickup code and lifecycle status
//   - Status and Action: a closed state machine with an explicit transition
//     table (Created -> Accepted -> In Progress -> Ready, with Rejected as a
//     terminal escape from any non-terminal state)
//   - Cart, OrderLine, PrintSpec: the immutable creation payloads
//   - PickupCode: the six-digit out-of-band pickup secret
//
// Key business rules:
//   - payloads are immutable after creation; only status and the paid flag
//     ever change, and only through aggregate methods
//   - status moves strictly forward along the chain and never leaves a
//     terminal state
//   - only a vendor of the fulfiller scope may mutate; a print job is further
//     restricted to its one assigned vendor
//   - the amount due is computed once at creation and never recomputed
package fulfillment
