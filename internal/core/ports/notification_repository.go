package ports

import (
	"context"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// append-only notification log.
type NotificationRepository interface {
	// Add appends one notification. Always an insert; notifications are
	// never replaced or deleted.
	Add(ctx context.Context, n *notification.Notification) error

	// GetAllByRecipient returns the recipient's notifications newest first.
	GetAllByRecipient(ctx context.Context, recipientID kernel.UUID) ([]*notification.Notification, error)

	// MarkAllRead flips the read flag on every notification of the
	// recipient. Part of the read-sweep; idempotent.
	MarkAllRead(ctx context.Context, recipientID kernel.UUID) error
}
