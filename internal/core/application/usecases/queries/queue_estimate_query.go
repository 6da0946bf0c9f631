package queries

import (
	"errors"
	"time"

	"campus/internal/pkg/guard"
)

var ErrQueueEstimateQueryIsNotConstructed = errors.New(
	"QueueEstimateQuery must be created via NewQueueEstimateQuery constructor",
)

// QueueEstimateQuery estimates the canteen wait before ordering. Only
// accepted and in-progress orders count towards the estimate: created orders
// have not been picked up by the kitchen yet.
type QueueEstimateQuery struct {
	guard guard.ConstructorGuard
}

// NewQueueEstimateQuery creates a parameterless queue estimate query.
func NewQueueEstimateQuery() QueueEstimateQuery {
	return QueueEstimateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q QueueEstimateQuery) Validate() error {
	return q.guard.Validate(ErrQueueEstimateQueryIsNotConstructed)
}

// QueueEstimateQueryResponse is the pre-order wait estimate.
type QueueEstimateQueryResponse struct {
	OrdersAhead   int
	EstimatedWait time.Duration
}
