package queries

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

var ErrRequesterHistoryQueryIsNotConstructed = errors.New(
	"RequesterHistoryQuery must be created via NewRequesterHistoryQuery constructor",
)

// RequesterHistoryQuery retrieves everything a requester has ever placed,
// terminal entries included, newest first.
type RequesterHistoryQuery struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequesterHistoryQuery creates a query for a requester's full history.
func NewRequesterHistoryQuery(requesterID kernel.UUID) (RequesterHistoryQuery, error) {
	historyQuery := RequesterHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := historyQuery.setRequesterID(requesterID); err != nil {
		return RequesterHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q RequesterHistoryQuery) Validate() error {
	return q.guard.Validate(ErrRequesterHistoryQueryIsNotConstructed)
}

// RequesterID returns the history owner.
func (q RequesterHistoryQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

func (q *RequesterHistoryQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	q.requesterID = requesterID
	return nil
}
