package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/fulfillment"
)

// minutesPerActiveOrder is the flat per-order service time the estimate
// assumes for the canteen kitchen.
const minutesPerActiveOrder = 2

// QueueEstimateQueryHandler counts the canteen orders currently being worked
// on and converts the count into a flat wait estimate.
type QueueEstimateQueryHandler struct {
	db *gorm.DB
}

// NewQueueEstimateQueryHandler creates a handler for queue estimates.
func NewQueueEstimateQueryHandler(db *gorm.DB) QueueEstimateQueryHandler {
	return QueueEstimateQueryHandler{db: db}
}

// Handle executes the queue estimate query.
func (h QueueEstimateQueryHandler) Handle(
	ctx context.Context,
	query QueueEstimateQuery,
) (QueueEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QueueEstimateQueryResponse{}, err
	}

	var ordersAhead int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM fulfillments
		WHERE kind = ?
		  AND status IN (?, ?)
	`, fulfillment.KindCanteenOrder.String(),
		fulfillment.Accepted.String(),
		fulfillment.InProgress.String(),
	).Scan(&ordersAhead).Error
	if err != nil {
		return QueueEstimateQueryResponse{}, err
	}

	return QueueEstimateQueryResponse{
		OrdersAhead:   int(ordersAhead),
		EstimatedWait: time.Duration(ordersAhead) * minutesPerActiveOrder * time.Minute,
	}, nil
}
