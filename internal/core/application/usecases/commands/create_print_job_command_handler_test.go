package commands_test

import (
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
	"campus/internal/core/domain/model/user"
	"campus/internal/core/domain/services"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePrintJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewCreatePrintJobCommand(kernel.NewUUID(), kernel.NewUUID(), vendorID, makePrintSpec(t))
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)

	var notified *notification.Notification
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("VendorExists", mock.Anything, vendorID, user.ScopePrint).Return(true, nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*fulfillment.Fulfillment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Run(func(args mock.Arguments) {
				notified = args.Get(1).(*notification.Notification)
			}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreatePrintJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePrintJobCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
	require.NotNil(t, notified)
	assert.True(t, notified.RecipientID().IsEqual(vendorID))
	assert.Contains(t, notified.Message(), "New print job #")
}

func TestCreatePrintJobCommandHandler_Handle_NotAPrintVendor(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewCreatePrintJobCommand(kernel.NewUUID(), kernel.NewUUID(), vendorID, makePrintSpec(t))
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("VendorExists", mock.Anything, vendorID, user.ScopePrint).Return(false, nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreatePrintJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePrintJobCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "FulfillmentRepository")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreatePrintJobCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePrintJobCommand{} // not constructed properly
	factory := new(MockCreatePrintJobUoWFactory)
	h := commands.NewCreatePrintJobCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
