package commands

import (
	"context"
	"fmt"
	"log/slog"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
)

// TransitionCommandHandler advances fulfillments through their lifecycle on
// behalf of vendors. Authorization and transition legality live on the
// aggregate; the handler loads, applies, persists and notifies the requester.
type TransitionCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewTransitionCommandHandler creates a handler for lifecycle transitions.
func NewTransitionCommandHandler(uowFactory FulfillmentUoWFactory, logger *slog.Logger) TransitionCommandHandler {
	return TransitionCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the transition command.
func (h TransitionCommandHandler) Handle(ctx context.Context, cmd TransitionCommand) error {
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

	if err = entity.Apply(cmd.Actor(), cmd.Action()); err != nil {
		return err
	}

	if err = uow.FulfillmentRepository().Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyRequester(ctx, uow, entity)
	return nil
}

// notifyRequester tells the owner about the new status. Runs outside the
// committed transaction; failures are logged, not returned.
func (h TransitionCommandHandler) notifyRequester(
	ctx context.Context,
	uow FulfillmentUoW,
	entity *fulfillment.Fulfillment,
) {
	message := fmt.Sprintf("%s #%s -> %s", kindLabel(entity.Kind()), entity.ID(), entity.Status())
	n, err := notification.NewNotification(kernel.NewUUID(), entity.RequesterID(), message)
	if err != nil {
		h.logger.Warn("transition: building notification failed",
			"fulfillment_id", entity.ID().String(), "error", err)
		return
	}
	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		h.logger.Warn("transition: notification append failed",
			"fulfillment_id", entity.ID().String(), "error", err)
	}
}

// kindLabel renders the fulfillment kind the way requester-facing messages
// spell it.
func kindLabel(kind fulfillment.Kind) string {
	switch kind {
	case fulfillment.KindPrintJob:
		return "Print job"
	case fulfillment.KindCanteenOrder:
		return "Canteen order"
	default:
		return "Fulfillment"
	}
}
