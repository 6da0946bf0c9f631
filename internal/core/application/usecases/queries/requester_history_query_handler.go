package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequesterHistoryQueryHandler reads a requester's full fulfillment history.
// It reuses the queue entry shape: history rows carry the same columns.
type RequesterHistoryQueryHandler struct {
	db *gorm.DB
}

// NewRequesterHistoryQueryHandler creates a handler for history reads.
func NewRequesterHistoryQueryHandler(db *gorm.DB) RequesterHistoryQueryHandler {
	return RequesterHistoryQueryHandler{db: db}
}

// Handle executes the history query, newest entries first.
func (h RequesterHistoryQueryHandler) Handle(
	ctx context.Context,
	query RequesterHistoryQuery,
) ([]FulfillerQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			status,
			paid,
			pickup_code,
			amount_due_paise,
			lines,
			print_spec,
			created_at
		FROM fulfillments
		WHERE requester_id = ?
		ORDER BY created_at DESC
	`, query.RequesterID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]FulfillerQueueQueryResponse, 0)

	for rows.Next() {
		var (
			id             uuid.UUID
			kind           string
			status         string
			paid           bool
			pickupCode     string
			amountDuePaise int64
			linesJSON      []byte
			printSpecJSON  []byte
			createdAt      time.Time
		)

		err = rows.Scan(&id, &kind, &status, &paid, &pickupCode,
			&amountDuePaise, &linesJSON, &printSpecJSON, &createdAt)
		if err != nil {
			return nil, err
		}

		entry, buildErr := buildQueueEntry(
			id, kind, status, paid, pickupCode, amountDuePaise, linesJSON, printSpecJSON, createdAt)
		if buildErr != nil {
			return nil, buildErr
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
