package commands

import (
	"context"
)

// SetMenuItemAvailabilityCommandHandler toggles whether a menu item can be
// ordered. Canteen vendors only.
type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewSetMenuItemAvailabilityCommandHandler creates a handler for the toggle.
func NewSetMenuItemAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
func (h SetMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetMenuItemAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorizeMenuMaintainer(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.SetAvailable(cmd.Available())

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
