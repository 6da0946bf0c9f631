package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus/internal/core/domain/model/kernel"
)

// GetMenuQueryHandler reads the orderable menu from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu reads.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu query. Items come back in name order.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_paise
		FROM menu_items
		WHERE available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			pricePaise int64
		)

		if err = rows.Scan(&id, &name, &pricePaise); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(pricePaise)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, GetMenuQueryResponse{
			ID:    itemID,
			Name:  name,
			Price: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
