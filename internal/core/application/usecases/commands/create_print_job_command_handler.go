package commands

import (
	"context"
	"fmt"
	"log/slog"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
	"campus/internal/core/domain/model/user"
	"campus/internal/core/domain/services"
	"campus/internal/pkg/errs"
)

// CreatePrintJobCommandHandler submits print jobs. It validates the targeted
// vendor, prices the payload once, generates the pickup code, persists the
// job in Created status and notifies the one assigned vendor.
type CreatePrintJobCommandHandler struct {
	uowFactory CreatePrintJobUoWFactory
	pricing    services.PricingPolicy
	logger     *slog.Logger
}

// NewCreatePrintJobCommandHandler creates a handler for print job submission.
func NewCreatePrintJobCommandHandler(
	uowFactory CreatePrintJobUoWFactory,
	pricing services.PricingPolicy,
	logger *slog.Logger,
) CreatePrintJobCommandHandler {
	return CreatePrintJobCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		logger:     logger,
	}
}

// Handle processes the print job submission command.
// Fails with a validation error when the targeted vendor does not exist or
// is not a print vendor.
func (h CreatePrintJobCommandHandler) Handle(ctx context.Context, cmd CreatePrintJobCommand) error {
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

	exists, err := uow.UserRepository().VendorExists(ctx, cmd.VendorID(), user.ScopePrint)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewValueIsInvalidErrorWithCause("vendor",
			fmt.Errorf("%s is not a print vendor", cmd.VendorID()))
	}

	job, err := fulfillment.NewPrintJob(
		cmd.JobID(),
		cmd.RequesterID(),
		cmd.VendorID(),
		cmd.Spec(),
		h.pricing.PricePrintJob(cmd.Spec()),
		fulfillment.NewRandomPickupCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.FulfillmentRepository().Add(ctx, job); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyVendor(ctx, uow, job)
	return nil
}

// notifyVendor appends the "received" notification to the assigned vendor.
// Runs outside the committed transaction; failures are logged, not returned.
func (h CreatePrintJobCommandHandler) notifyVendor(
	ctx context.Context,
	uow CreatePrintJobUoW,
	job *fulfillment.Fulfillment,
) {
	vendorID := job.AssignedVendorID()
	if vendorID == nil {
		return
	}

	message := fmt.Sprintf("New print job #%s received.", job.ID())
	n, err := notification.NewNotification(kernel.NewUUID(), *vendorID, message)
	if err != nil {
		h.logger.Warn("print job fan-out: building notification failed",
			"job_id", job.ID().String(), "error", err)
		return
	}
	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		h.logger.Warn("print job fan-out: notification append failed",
			"job_id", job.ID().String(), "vendor_id", vendorID.String(), "error", err)
	}
}
