package queries

import (
	"errors"
	"time"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/guard"
)

var ErrFulfillerQueueQueryIsNotConstructed = errors.New(
	"FulfillerQueueQuery must be created via NewFulfillerQueueQuery constructor",
)

// FulfillerQueueQuery retrieves the active work queue for one vendor. Canteen
// vendors share the canteen queue; print vendors see only the jobs addressed
// to them. Active means everything not yet Ready or Rejected.
type FulfillerQueueQuery struct {
	vendorID kernel.UUID
	scope    user.VendorScope

	guard guard.ConstructorGuard
}

// NewFulfillerQueueQuery creates a query for a vendor's active queue.
func NewFulfillerQueueQuery(vendorID kernel.UUID, scope user.VendorScope) (FulfillerQueueQuery, error) {
	queueQuery := FulfillerQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		queueQuery.setVendorID(vendorID),
		queueQuery.setScope(scope),
	); err != nil {
		return FulfillerQueueQuery{}, err
	}

	return queueQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q FulfillerQueueQuery) Validate() error {
	return q.guard.Validate(ErrFulfillerQueueQueryIsNotConstructed)
}

// VendorID returns the vendor whose queue is requested.
func (q FulfillerQueueQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Scope returns the vendor's service class.
func (q FulfillerQueueQuery) Scope() user.VendorScope {
	return q.scope
}

func (q *FulfillerQueueQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	q.vendorID = vendorID
	return nil
}

func (q *FulfillerQueueQuery) setScope(scope user.VendorScope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	q.scope = scope
	return nil
}

// QueueLine is one requested item inside a queue entry.
type QueueLine struct {
	Name     string
	Quantity int
}

// FulfillerQueueQueryResponse is one entry in a vendor's work queue, newest
// first. Lines is filled for canteen orders, PrintSummary for print jobs.
type FulfillerQueueQueryResponse struct {
	ID           kernel.UUID
	Kind         string
	Status       string
	Paid         bool
	PickupCode   string
	AmountDue    kernel.Money
	Lines        []QueueLine
	PrintSummary string
	CreatedAt    time.Time
}
