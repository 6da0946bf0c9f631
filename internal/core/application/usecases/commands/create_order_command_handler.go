package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
	"campus/internal/core/domain/model/user"
	"campus/internal/core/domain/services"
	"campus/internal/pkg/errs"
)

// CreateOrderCommandHandler places canteen orders. It resolves the cart
// against the menu, prices the payload once through the pricing policy,
// generates the pickup code, persists the order in Created status and then
// notifies every canteen vendor.
//
// The fan-out runs after the commit and is best-effort: a failed notification
// is logged and never rolls back the created order.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	pricing    services.PricingPolicy
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	pricing services.PricingPolicy,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Fails with a validation error when a cart line references a menu item that
// does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lines, err := h.resolveCart(ctx, uow, cmd.Cart())
	if err != nil {
		return err
	}

	order, err := fulfillment.NewCanteenOrder(
		cmd.OrderID(),
		cmd.RequesterID(),
		lines,
		h.pricing.PriceOrder(lines),
		fulfillment.NewRandomPickupCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.FulfillmentRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCanteenVendors(ctx, uow, order)
	return nil
}

// resolveCart turns cart lines into priced order lines using the menu as it
// stands right now. The resolved name and unit price become part of the
// immutable payload.
func (h CreateOrderCommandHandler) resolveCart(
	ctx context.Context,
	uow CreateOrderUoW,
	cart fulfillment.Cart,
) ([]fulfillment.OrderLine, error) {
	menuRepo := uow.MenuItemRepository()

	cartLines := cart.Lines()
	lines := make([]fulfillment.OrderLine, 0, len(cartLines))
	for _, cartLine := range cartLines {
		item, err := menuRepo.Get(ctx, cartLine.ItemID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart item", err)
		}
		if err != nil {
			return nil, err
		}

		line, err := fulfillment.NewOrderLine(item.ID(), item.Name(), item.Price(), cartLine.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// notifyCanteenVendors appends one notification per canteen vendor. Runs
// outside the committed transaction; failures are logged, not returned.
func (h CreateOrderCommandHandler) notifyCanteenVendors(
	ctx context.Context,
	uow CreateOrderUoW,
	order *fulfillment.Fulfillment,
) {
	vendors, err := uow.UserRepository().GetVendorsByScope(ctx, user.ScopeCanteen)
	if err != nil {
		h.logger.Warn("order fan-out: vendor lookup failed",
			"order_id", order.ID().String(), "error", err)
		return
	}

	message := fmt.Sprintf("New canteen order #%s placed.", order.ID())
	notificationRepo := uow.NotificationRepository()
	for _, vendor := range vendors {
		n, err := notification.NewNotification(kernel.NewUUID(), vendor.ID(), message)
		if err != nil {
			h.logger.Warn("order fan-out: building notification failed",
				"order_id", order.ID().String(), "vendor_id", vendor.ID().String(), "error", err)
			continue
		}
		if err := notificationRepo.Add(ctx, n); err != nil {
			h.logger.Warn("order fan-out: notification append failed",
				"order_id", order.ID().String(), "vendor_id", vendor.ID().String(), "error", err)
		}
	}
}
