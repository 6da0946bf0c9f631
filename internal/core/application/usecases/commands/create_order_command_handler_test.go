package commands_test

import (
	"errors"
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/core/domain/services"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := makeMenuItem(t, 10)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), makeCart(t, item.ID(), 2))
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	menuRepo := new(MockMenuItemRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	vendors := []*user.User{makeVendorUser(t, user.ScopeCanteen), makeVendorUser(t, user.ScopeCanteen)}

	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*fulfillment.Fulfillment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetVendorsByScope", mock.Anything, user.ScopeCanteen).Return(vendors, nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	fulfillmentRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), makeCart(t, itemID, 1))
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	menuRepo.On("Get", mock.Anything, itemID).
		Return(nil, errs.NewObjectNotFoundError("menu item", itemID.String())).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "FulfillmentRepository")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_FanOutFailureIsNotAnError(t *testing.T) {
	ctx := t.Context()
	item := makeMenuItem(t, 8)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), makeCart(t, item.ID(), 1))
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	fulfillmentRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	menuRepo := new(MockMenuItemRepository)
	menuRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
	userRepo := new(MockUserRepository)
	userRepo.On("GetVendorsByScope", mock.Anything, user.ScopeCanteen).
		Return(nil, errors.New("vendor lookup failed")).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertNotCalled(t, "NotificationRepository")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), makeCart(t, kernel.NewUUID(), 1))
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingPolicy(), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
