package ports

import (
	"context"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
)

// FulfillmentRepository defines the persistence contract for fulfillment
// aggregates on the mutation path. Derived views (queues, histories,
// estimates) are read by the query layer directly and are not part of this
// contract.
type FulfillmentRepository interface {
	// Add persists a new fulfillment aggregate.
	Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error

	// Update persists status/paid changes of an existing aggregate as an
	// atomic single-row write.
	Update(ctx context.Context, aggregate *fulfillment.Fulfillment) error

	// Get retrieves a fulfillment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Fulfillment, error)
}
