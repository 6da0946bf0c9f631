package commands

import (
	"context"
	"time"
)

// NotificationResponse is one inbox entry as it stood before the sweep.
// WasUnread reports whether this delivery is the first time the recipient
// sees the message.
type NotificationResponse struct {
	ID        string
	Message   string
	WasUnread bool
	CreatedAt time.Time
}

// ReadNotificationsCommandHandler lists a recipient's inbox newest-first and
// marks everything read in the same transaction. Listing is a mutating
// operation here on purpose: delivery and acknowledgement are one step.
type ReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewReadNotificationsCommandHandler creates a handler for the inbox sweep.
func NewReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) ReadNotificationsCommandHandler {
	return ReadNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read-sweep and returns the pre-sweep inbox.
func (h ReadNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReadNotificationsCommand,
) ([]NotificationResponse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inbox, err := uow.NotificationRepository().GetAllByRecipient(ctx, cmd.RecipientID())
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(inbox))
	for _, n := range inbox {
		responses = append(responses, NotificationResponse{
			ID:        n.ID().String(),
			Message:   n.Message(),
			WasUnread: !n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}

	if err = uow.NotificationRepository().MarkAllRead(ctx, cmd.RecipientID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return responses, nil
}
