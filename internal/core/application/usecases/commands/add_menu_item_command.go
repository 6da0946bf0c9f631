package commands

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
	"campus/internal/pkg/guard"
)

// ErrAddMenuItemCommandIsNotConstructed is returned when an AddMenuItemCommand
// was not created via the NewAddMenuItemCommand constructor.
var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a canteen vendor adding an item to the
// shared menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  user.Actor
	name   string
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	itemID kernel.UUID,
	actor user.Actor,
	name string,
	price kernel.Money,
) (AddMenuItemCommand, error) {
	addCommand := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setItemID(itemID),
		addCommand.setActor(actor),
		addCommand.setName(name),
		addCommand.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier the new item will carry.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the acting vendor.
func (c AddMenuItemCommand) Actor() user.Actor {
	return c.actor
}

// Name returns the item name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the item price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if price.Paise() <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
