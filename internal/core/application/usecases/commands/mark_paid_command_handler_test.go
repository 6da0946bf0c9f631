package commands_test

import (
	"fmt"
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/notification"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPaidCommandHandler_Handle_FirstMarkNotifies(t *testing.T) {
	ctx := t.Context()
	entity := restoredCanteenOrder(t, fulfillment.Accepted, false)
	actor := makeVendorActor(t, user.ScopeCanteen)
	cmd, err := commands.NewMarkPaidCommand(entity.ID(), actor)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	notificationRepo := new(MockNotificationRepository)

	var notified *notification.Notification
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Get", mock.Anything, entity.ID()).Return(entity, nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Update", mock.Anything, entity).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Run(func(args mock.Arguments) {
				notified = args.Get(1).(*notification.Notification)
			}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPaidCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)

	assert.True(t, entity.IsPaid())
	require.NotNil(t, notified)
	assert.True(t, notified.RecipientID().IsEqual(entity.RequesterID()))
	assert.Equal(t, fmt.Sprintf("Canteen order #%s marked as paid.", entity.ID()), notified.Message())
}

func TestMarkPaidCommandHandler_Handle_SecondMarkIsSilent(t *testing.T) {
	ctx := t.Context()
	entity := restoredCanteenOrder(t, fulfillment.Accepted, true)
	actor := makeVendorActor(t, user.ScopeCanteen)
	cmd, err := commands.NewMarkPaidCommand(entity.ID(), actor)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	fulfillmentRepo.On("Get", mock.Anything, entity.ID()).Return(entity, nil).Once()
	fulfillmentRepo.On("Update", mock.Anything, entity).Return(nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPaidCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, entity.IsPaid())
	uow.AssertNotCalled(t, "NotificationRepository")
}

func TestMarkPaidCommandHandler_Handle_StudentIsForbidden(t *testing.T) {
	ctx := t.Context()
	entity := restoredCanteenOrder(t, fulfillment.Accepted, false)
	cmd, err := commands.NewMarkPaidCommand(entity.ID(), makeStudentActor(t))
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	fulfillmentRepo.On("Get", mock.Anything, entity.ID()).Return(entity, nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkPaidCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.False(t, entity.IsPaid())
	uow.AssertNotCalled(t, "Commit")
}
