package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// TrackFulfillmentQueryHandler reads one fulfillment row for its owner.
// A missing row fails with an ObjectNotFoundError; a row owned by somebody
// else fails with a ForbiddenError, so the two cases stay distinguishable.
type TrackFulfillmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackFulfillmentQueryHandler creates a handler for tracking reads.
func NewTrackFulfillmentQueryHandler(db *gorm.DB) TrackFulfillmentQueryHandler {
	return TrackFulfillmentQueryHandler{db: db}
}

// Handle executes the tracking query.
func (h TrackFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query TrackFulfillmentQuery,
) (TrackFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackFulfillmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			requester_id,
			status,
			paid,
			pickup_code,
			amount_due_paise,
			created_at
		FROM fulfillments
		WHERE id = ?
	`, query.FulfillmentID().Bytes()).Row()

	var (
		id             uuid.UUID
		kind           string
		requesterID    uuid.UUID
		status         string
		paid           bool
		pickupCode     string
		amountDuePaise int64
		createdAt      time.Time
	)

	err := row.Scan(&id, &kind, &requesterID, &status, &paid, &pickupCode, &amountDuePaise, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackFulfillmentQueryResponse{}, errs.NewObjectNotFoundError(
			"fulfillment", query.FulfillmentID().String())
	}
	if err != nil {
		return TrackFulfillmentQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(requesterID[:])
	if err != nil {
		return TrackFulfillmentQueryResponse{}, err
	}
	if !ownerID.IsEqual(query.RequesterID()) {
		return TrackFulfillmentQueryResponse{}, errs.NewForbiddenError(
			query.RequesterID().String(), "fulfillment "+query.FulfillmentID().String())
	}

	fulfillmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackFulfillmentQueryResponse{}, err
	}

	amountDue, err := kernel.NewMoney(amountDuePaise)
	if err != nil {
		return TrackFulfillmentQueryResponse{}, err
	}

	return TrackFulfillmentQueryResponse{
		ID:         fulfillmentID,
		Kind:       kind,
		Status:     status,
		Paid:       paid,
		PickupCode: pickupCode,
		AmountDue:  amountDue,
		CreatedAt:  createdAt,
	}, nil
}
