// Package menu models the canteen menu the lifecycle engine validates order
// payloads against. One canteen is modeled operationally; items carry a price
// and an availability flag maintained by canteen vendors.
package menu

import (
	"errors"
	"fmt"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through the NewMenuItem or RestoreMenuItem factory functions.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is one orderable canteen dish. Name and price are fixed at
// creation; availability toggles as the vendor runs out or restocks.
type MenuItem struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	available bool

	isConstructed bool
}

// NewMenuItem creates an available menu item with a positive price.
func NewMenuItem(id kernel.UUID, name string, price kernel.Money) (*MenuItem, error) {
	return RestoreMenuItem(id, name, price, true)
}

// RestoreMenuItem reconstructs a menu item from persistent storage.
func RestoreMenuItem(id kernel.UUID, name string, price kernel.Money, available bool) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("item name")
	}
	if price.Paise() <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}

	return &MenuItem{
		id:            id,
		name:          name,
		price:         price,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through a factory function.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the per-unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// IsAvailable reports whether the item is currently orderable.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// SetAvailable toggles the availability flag.
func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}
