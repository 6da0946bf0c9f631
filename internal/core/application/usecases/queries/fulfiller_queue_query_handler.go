package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
)

// lineDocument mirrors the jsonb shape the storage layer writes for one
// order line.
type lineDocument struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	UnitPricePaise int64  `json:"unit_price_paise"`
	Quantity       int    `json:"quantity"`
}

// printSpecDocument mirrors the jsonb shape for a print job payload.
type printSpecDocument struct {
	DocumentRef string `json:"document_ref"`
	Copies      int    `json:"copies"`
	ColorMode   string `json:"color_mode"`
	Binding     string `json:"binding"`
}

// FulfillerQueueQueryHandler reads a vendor's active work queue.
type FulfillerQueueQueryHandler struct {
	db *gorm.DB
}

// NewFulfillerQueueQueryHandler creates a handler for vendor queue reads.
func NewFulfillerQueueQueryHandler(db *gorm.DB) FulfillerQueueQueryHandler {
	return FulfillerQueueQueryHandler{db: db}
}

// Handle executes the fulfiller queue query. Canteen vendors get every
// active canteen order; print vendors get only their own assigned jobs.
// Entries come back newest first.
func (h FulfillerQueueQueryHandler) Handle(
	ctx context.Context,
	query FulfillerQueueQuery,
) ([]FulfillerQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
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
		WHERE status IN (?, ?, ?)
	`
	activeStatuses := []any{
		fulfillment.Created.String(),
		fulfillment.Accepted.String(),
		fulfillment.InProgress.String(),
	}

	var rowsQuery string
	var args []any
	if query.Scope() == user.ScopePrint {
		rowsQuery = baseQuery + ` AND assigned_vendor_id = ? ORDER BY created_at DESC`
		args = append(activeStatuses, query.VendorID().Bytes())
	} else {
		rowsQuery = baseQuery + ` AND kind = ? ORDER BY created_at DESC`
		args = append(activeStatuses, fulfillment.KindCanteenOrder.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(rowsQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queue := make([]FulfillerQueueQueryResponse, 0)

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
		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}

func buildQueueEntry(
	id uuid.UUID,
	kind, status string,
	paid bool,
	pickupCode string,
	amountDuePaise int64,
	linesJSON, printSpecJSON []byte,
	createdAt time.Time,
) (FulfillerQueueQueryResponse, error) {
	entryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return FulfillerQueueQueryResponse{}, err
	}

	amountDue, err := kernel.NewMoney(amountDuePaise)
	if err != nil {
		return FulfillerQueueQueryResponse{}, err
	}

	entry := FulfillerQueueQueryResponse{
		ID:         entryID,
		Kind:       kind,
		Status:     status,
		Paid:       paid,
		PickupCode: pickupCode,
		AmountDue:  amountDue,
		CreatedAt:  createdAt,
	}

	if len(linesJSON) > 0 {
		var documents []lineDocument
		if err = json.Unmarshal(linesJSON, &documents); err != nil {
			return FulfillerQueueQueryResponse{}, err
		}
		for _, document := range documents {
			entry.Lines = append(entry.Lines, QueueLine{
				Name:     document.Name,
				Quantity: document.Quantity,
			})
		}
	}

	if len(printSpecJSON) > 0 {
		var document printSpecDocument
		if err = json.Unmarshal(printSpecJSON, &document); err != nil {
			return FulfillerQueueQueryResponse{}, err
		}
		entry.PrintSummary = fmt.Sprintf("%s, %d copies, %s, %s",
			document.DocumentRef, document.Copies, document.ColorMode, document.Binding)
	}

	return entry, nil
}
