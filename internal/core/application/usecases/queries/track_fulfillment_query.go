// Package queries contains the read side: validated query values and
// handlers that read the storage directly, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

var ErrTrackFulfillmentQueryIsNotConstructed = errors.New(
	"TrackFulfillmentQuery must be created via NewTrackFulfillmentQuery constructor",
)

// TrackFulfillmentQuery retrieves the live state of one fulfillment for its
// owner. Requesters may only track their own entities.
//
// Example:
//
//	query, err := NewTrackFulfillmentQuery(fulfillmentID, studentID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	state, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track: %w", err)
//	}
//	fmt.Printf("%s: %s (code %s)\n", state.ID, state.Status, state.PickupCode)
type TrackFulfillmentQuery struct {
	fulfillmentID kernel.UUID
	requesterID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackFulfillmentQuery creates a query to track one fulfillment.
func NewTrackFulfillmentQuery(fulfillmentID, requesterID kernel.UUID) (TrackFulfillmentQuery, error) {
	trackQuery := TrackFulfillmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackQuery.setFulfillmentID(fulfillmentID),
		trackQuery.setRequesterID(requesterID),
	); err != nil {
		return TrackFulfillmentQuery{}, err
	}

	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackFulfillmentQueryIsNotConstructed)
}

// FulfillmentID returns the target entity.
func (q TrackFulfillmentQuery) FulfillmentID() kernel.UUID {
	return q.fulfillmentID
}

// RequesterID returns the tracking owner.
func (q TrackFulfillmentQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

func (q *TrackFulfillmentQuery) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}
	q.fulfillmentID = fulfillmentID
	return nil
}

func (q *TrackFulfillmentQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	q.requesterID = requesterID
	return nil
}

// TrackFulfillmentQueryResponse is the owner-facing view of one fulfillment.
type TrackFulfillmentQueryResponse struct {
	ID         kernel.UUID
	Kind       string
	Status     string
	Paid       bool
	PickupCode string
	AmountDue  kernel.Money
	CreatedAt  time.Time
}
