package commands

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

// ErrReadNotificationsCommandIsNotConstructed is returned when a
// ReadNotificationsCommand was not created via the constructor.
var ErrReadNotificationsCommandIsNotConstructed = errors.New(
	"ReadNotificationsCommand must be created via NewReadNotificationsCommand constructor",
)

// ReadNotificationsCommand represents a recipient opening their inbox:
// the listing returns the unread state as it stood, then sweeps everything
// to read in the same transaction.
type ReadNotificationsCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReadNotificationsCommand creates a command to list-and-sweep an inbox.
func NewReadNotificationsCommand(recipientID kernel.UUID) (ReadNotificationsCommand, error) {
	readCommand := ReadNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := readCommand.setRecipientID(recipientID); err != nil {
		return ReadNotificationsCommand{}, err
	}

	return readCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrReadNotificationsCommandIsNotConstructed)
}

// RecipientID returns the inbox owner.
func (c ReadNotificationsCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *ReadNotificationsCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}
