package commands

import (
	"context"

	"campus/internal/core/domain/model/menu"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
)

// AddMenuItemCommandHandler adds items to the shared canteen menu.
// Only canteen vendors may maintain the menu; other actors are rejected
// with a ForbiddenError before any write happens.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item addition.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-menu-item command.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorizeMenuMaintainer(cmd.Actor()); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// authorizeMenuMaintainer admits canteen vendors only.
func authorizeMenuMaintainer(actor user.Actor) error {
	if !actor.IsVendor() || actor.Scope() != user.ScopeCanteen {
		return errs.NewForbiddenError(actor.ID().String(), "canteen menu")
	}
	return nil
}
