// Package menurepo provides data transfer objects and mapping functions for
// canteen menu item persistence.
package menurepo

import (
	"github.com/google/uuid"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/menu"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	PricePaise int64
	Available  bool `gorm:"index"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Name:       item.Name(),
		PricePaise: item.Price().Paise(),
		Available:  item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PricePaise)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, price, dto.Available)
}
