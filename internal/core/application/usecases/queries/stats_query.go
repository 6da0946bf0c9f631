package queries

import (
	"errors"

	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/guard"
)

var ErrStatsQueryIsNotConstructed = errors.New(
	"StatsQuery must be created via NewStatsQuery constructor",
)

// StatsQuery retrieves operational counters for the admin dashboard.
// Admins only.
type StatsQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

// NewStatsQuery creates a stats query on behalf of the given actor.
func NewStatsQuery(actor user.Actor) (StatsQuery, error) {
	statsQuery := StatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statsQuery.setActor(actor); err != nil {
		return StatsQuery{}, err
	}

	return statsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q StatsQuery) Validate() error {
	return q.guard.Validate(ErrStatsQueryIsNotConstructed)
}

// Actor returns the requesting actor.
func (q StatsQuery) Actor() user.Actor {
	return q.actor
}

func (q *StatsQuery) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

// StatsQueryResponse is the admin dashboard snapshot.
type StatsQueryResponse struct {
	TotalUsers          int
	TotalFulfillments   int
	FulfillmentsByState map[string]int
	UnreadNotifications int
}
