package queries

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the orderable canteen menu. Items toggled
// unavailable by the vendor are excluded.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one orderable menu item.
type GetMenuQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}
