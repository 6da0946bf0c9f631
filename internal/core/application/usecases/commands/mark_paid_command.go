package commands

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/guard"
)

// ErrMarkPaidCommandIsNotConstructed is returned when a MarkPaidCommand was
// not created via the NewMarkPaidCommand constructor.
var ErrMarkPaidCommandIsNotConstructed = errors.New(
	"MarkPaidCommand must be created via NewMarkPaidCommand constructor",
)

// MarkPaidCommand represents a vendor's confirmation that payment for a
// fulfillment was received out-of-band.
type MarkPaidCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	actor         user.Actor

	guard guard.ConstructorGuard
}

// NewMarkPaidCommand creates a command to record an out-of-band payment.
func NewMarkPaidCommand(fulfillmentID kernel.UUID, actor user.Actor) (MarkPaidCommand, error) {
	markPaidCommand := MarkPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		markPaidCommand.setFulfillmentID(fulfillmentID),
		markPaidCommand.setActor(actor),
	); err != nil {
		return MarkPaidCommand{}, err
	}

	return markPaidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaidCommandIsNotConstructed)
}

// FulfillmentID returns the target entity.
func (c MarkPaidCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Actor returns the acting vendor.
func (c MarkPaidCommand) Actor() user.Actor {
	return c.actor
}

func (c *MarkPaidCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}
	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *MarkPaidCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
