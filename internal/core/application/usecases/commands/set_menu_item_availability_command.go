package commands

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/guard"
)

// ErrSetMenuItemAvailabilityCommandIsNotConstructed is returned when a
// SetMenuItemAvailabilityCommand was not created via the constructor.
var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

// SetMenuItemAvailabilityCommand represents a canteen vendor toggling whether
// an item can be ordered. Unavailable items stay on record for history.
type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	actor     user.Actor
	available bool

	guard guard.ConstructorGuard
}

// NewSetMenuItemAvailabilityCommand creates a command to toggle availability.
func NewSetMenuItemAvailabilityCommand(
	itemID kernel.UUID,
	actor user.Actor,
	available bool,
) (SetMenuItemAvailabilityCommand, error) {
	setCommand := SetMenuItemAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setCommand.setItemID(itemID),
		setCommand.setActor(actor),
	); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	setCommand.available = available

	return setCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c SetMenuItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the acting vendor.
func (c SetMenuItemAvailabilityCommand) Actor() user.Actor {
	return c.actor
}

// Available returns the desired availability.
func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetMenuItemAvailabilityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SetMenuItemAvailabilityCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
