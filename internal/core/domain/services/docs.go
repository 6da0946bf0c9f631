// Package services provides domain services for operations that do not
// belong to a single aggregate. Currently this is the pricing policy: a pure
// computation from a creation payload to the amount due, injected into the
// creation handlers so the aggregate itself never recomputes prices.
package services
