package commands

import (
	"errors"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/guard"
)

// ErrTransitionCommandIsNotConstructed is returned when a TransitionCommand
// was not created via the NewTransitionCommand constructor.
var ErrTransitionCommandIsNotConstructed = errors.New(
	"TransitionCommand must be created via NewTransitionCommand constructor",
)

// TransitionCommand represents a vendor's request to advance a fulfillment
// through its lifecycle: accept, progress, ready or reject.
type TransitionCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	actor         user.Actor
	action        fulfillment.Action

	guard guard.ConstructorGuard
}

// NewTransitionCommand creates a command to run one lifecycle action.
func NewTransitionCommand(
	fulfillmentID kernel.UUID,
	actor user.Actor,
	action fulfillment.Action,
) (TransitionCommand, error) {
	transitionCommand := TransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setFulfillmentID(fulfillmentID),
		transitionCommand.setActor(actor),
		transitionCommand.setAction(action),
	); err != nil {
		return TransitionCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionCommand) Validate() error {
	return c.guard.Validate(ErrTransitionCommandIsNotConstructed)
}

// FulfillmentID returns the target entity.
func (c TransitionCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Actor returns the acting vendor.
func (c TransitionCommand) Actor() user.Actor {
	return c.actor
}

// Action returns the requested lifecycle action.
func (c TransitionCommand) Action() fulfillment.Action {
	return c.action
}

func (c *TransitionCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}
	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *TransitionCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionCommand) setAction(action fulfillment.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
