// Package notification models the append-only per-user message log fed by
// lifecycle transitions. Notifications are created by the engine, flipped to
// read in bulk when the recipient views their list, and never deleted.
package notification

import (
	"errors"
	"time"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through the NewNotification or RestoreNotification factory
// functions.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is one message in a recipient's log. Only the read flag is
// mutable, and only through MarkRead.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	message     string
	isRead      bool
	createdAt   time.Time

	isConstructed bool
}

// NewNotification creates an unread notification stamped with the current time.
func NewNotification(id, recipientID kernel.UUID, message string) (*Notification, error) {
	return RestoreNotification(id, recipientID, message, false, time.Now().UTC())
}

// RestoreNotification reconstructs a notification from persistent storage.
func RestoreNotification(id, recipientID kernel.UUID, message string, isRead bool, createdAt time.Time) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		message:       message,
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the notification was created through a factory function.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the user the message is addressed to.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Message returns the message text.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has seen the message.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the append time; it defines list ordering.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the read flag. Idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}
