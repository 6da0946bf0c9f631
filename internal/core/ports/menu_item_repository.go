package ports

import (
	"context"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for canteen menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists availability changes of an existing item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAllAvailable returns the currently orderable items.
	GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error)
}
