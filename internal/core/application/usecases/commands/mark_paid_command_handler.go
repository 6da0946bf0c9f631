package commands

import (
	"context"
	"fmt"
	"log/slog"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
)

// MarkPaidCommandHandler records out-of-band payments. Marking twice is a
// no-op on the aggregate; the requester is notified only on the first mark.
type MarkPaidCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewMarkPaidCommandHandler creates a handler for payment marking.
func NewMarkPaidCommandHandler(uowFactory FulfillmentUoWFactory, logger *slog.Logger) MarkPaidCommandHandler {
	return MarkPaidCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the mark-paid command.
func (h MarkPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := uow.FulfillmentRepository().Get(ctx, cmd.FulfillmentID())
	if err != nil {
		return err
	}

	wasPaid := entity.IsPaid()

	if err = entity.MarkPaid(cmd.Actor()); err != nil {
		return err
	}

	if err = uow.FulfillmentRepository().Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !wasPaid {
		h.notifyRequester(ctx, uow, entity)
	}
	return nil
}

// notifyRequester tells the owner the payment was recorded. Runs outside the
// committed transaction; failures are logged, not returned.
func (h MarkPaidCommandHandler) notifyRequester(
	ctx context.Context,
	uow FulfillmentUoW,
	entity *fulfillment.Fulfillment,
) {
	message := fmt.Sprintf("%s #%s marked as paid.", kindLabel(entity.Kind()), entity.ID())
	n, err := notification.NewNotification(kernel.NewUUID(), entity.RequesterID(), message)
	if err != nil {
		h.logger.Warn("mark paid: building notification failed",
			"fulfillment_id", entity.ID().String(), "error", err)
		return
	}
	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		h.logger.Warn("mark paid: notification append failed",
			"fulfillment_id", entity.ID().String(), "error", err)
	}
}
