// Package fulfillmentrepo provides data transfer objects and mapping
// functions for fulfillment persistence. The aggregate is stored as a single
// row: typed columns for the lifecycle fields the queries filter on, jsonb
// documents for the kind-specific payloads.
package fulfillmentrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
)

// FulfillmentDTO represents the database structure for persisting
// fulfillment aggregates.
type FulfillmentDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind             string     `gorm:"index"`
	RequesterID      uuid.UUID  `gorm:"type:uuid;index"`
	AssignedVendorID *uuid.UUID `gorm:"type:uuid;index"`
	Lines            []byte     `gorm:"type:jsonb"`
	PrintSpec        []byte     `gorm:"type:jsonb"`
	AmountDuePaise   int64
	Status           string `gorm:"index"`
	Paid             bool
	PickupCode       string
	CreatedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for fulfillment entities.
func (FulfillmentDTO) TableName() string {
	return "fulfillments"
}

// lineDTO is the jsonb document shape for one order line. The query layer
// reads the same shape when rendering vendor queues and histories.
type lineDTO struct {
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	UnitPricePaise int64     `json:"unit_price_paise"`
	Quantity       int       `json:"quantity"`
}

// printSpecDTO is the jsonb document shape for a print job payload.
type printSpecDTO struct {
	DocumentRef string `json:"document_ref"`
	Copies      int    `json:"copies"`
	ColorMode   string `json:"color_mode"`
	Binding     string `json:"binding"`
}

// fromDomain converts a fulfillment aggregate to its database representation.
func fromDomain(aggregate *fulfillment.Fulfillment) (FulfillmentDTO, error) {
	var assignedVendorID *uuid.UUID
	if id := aggregate.AssignedVendorID(); id != nil {
		raw := id.Bytes()
		assignedVendorID = &raw
	}

	var linesJSON []byte
	if lines := aggregate.Lines(); len(lines) > 0 {
		documents := make([]lineDTO, 0, len(lines))
		for _, line := range lines {
			documents = append(documents, lineDTO{
				ItemID:         line.ItemID().Bytes(),
				Name:           line.Name(),
				UnitPricePaise: line.UnitPrice().Paise(),
				Quantity:       line.Quantity(),
			})
		}

		var err error
		linesJSON, err = json.Marshal(documents)
		if err != nil {
			return FulfillmentDTO{}, err
		}
	}

	var printSpecJSON []byte
	if spec := aggregate.PrintSpec(); spec != nil {
		document := printSpecDTO{
			DocumentRef: spec.DocumentRef(),
			Copies:      spec.Copies(),
			ColorMode:   spec.ColorMode().String(),
			Binding:     spec.Binding().String(),
		}

		var err error
		printSpecJSON, err = json.Marshal(document)
		if err != nil {
			return FulfillmentDTO{}, err
		}
	}

	return FulfillmentDTO{
		ID:               aggregate.ID().Bytes(),
		Kind:             aggregate.Kind().String(),
		RequesterID:      aggregate.RequesterID().Bytes(),
		AssignedVendorID: assignedVendorID,
		Lines:            linesJSON,
		PrintSpec:        printSpecJSON,
		AmountDuePaise:   aggregate.AmountDue().Paise(),
		Status:           aggregate.Status().String(),
		Paid:             aggregate.IsPaid(),
		PickupCode:       aggregate.PickupCode().String(),
		CreatedAt:        aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a fulfillment aggregate using
// RestoreFulfillment.
func toDomain(dto FulfillmentDTO) (*fulfillment.Fulfillment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	var assignedVendorID *kernel.UUID
	if dto.AssignedVendorID != nil {
		vendorID, vendorErr := kernel.UUIDFromBytes((*dto.AssignedVendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		assignedVendorID = &vendorID
	}

	kind, err := fulfillment.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := fulfillment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amountDue, err := kernel.NewMoney(dto.AmountDuePaise)
	if err != nil {
		return nil, err
	}

	pickupCode, err := fulfillment.PickupCodeFromString(dto.PickupCode)
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	printSpec, err := printSpecToDomain(dto.PrintSpec)
	if err != nil {
		return nil, err
	}

	return fulfillment.RestoreFulfillment(
		id,
		kind,
		requesterID,
		assignedVendorID,
		lines,
		printSpec,
		amountDue,
		status,
		dto.Paid,
		pickupCode,
		dto.CreatedAt,
	)
}

func linesToDomain(linesJSON []byte) ([]fulfillment.OrderLine, error) {
	if len(linesJSON) == 0 {
		return nil, nil
	}

	var documents []lineDTO
	if err := json.Unmarshal(linesJSON, &documents); err != nil {
		return nil, err
	}

	lines := make([]fulfillment.OrderLine, 0, len(documents))
	for _, document := range documents {
		itemID, err := kernel.UUIDFromBytes(document.ItemID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(document.UnitPricePaise)
		if err != nil {
			return nil, err
		}

		line, err := fulfillment.NewOrderLine(itemID, document.Name, unitPrice, document.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func printSpecToDomain(printSpecJSON []byte) (*fulfillment.PrintSpec, error) {
	if len(printSpecJSON) == 0 {
		return nil, nil //nolint:nilnil // absent payload, not an error
	}

	var document printSpecDTO
	if err := json.Unmarshal(printSpecJSON, &document); err != nil {
		return nil, err
	}

	colorMode, err := fulfillment.ColorModeFromString(document.ColorMode)
	if err != nil {
		return nil, err
	}

	binding, err := fulfillment.BindingFromString(document.Binding)
	if err != nil {
		return nil, err
	}

	spec, err := fulfillment.NewPrintSpec(document.DocumentRef, document.Copies, colorMode, binding)
	if err != nil {
		return nil, err
	}

	return &spec, nil
}
