package commands_test

import (
	"testing"
	"time"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadNotificationsCommandHandler_Handle_SweepsAndReportsUnread(t *testing.T) {
	ctx := t.Context()
	recipientID := kernel.NewUUID()
	cmd, err := commands.NewReadNotificationsCommand(recipientID)
	require.NoError(t, err)

	now := time.Now().UTC()
	unread, err := notification.RestoreNotification(kernel.NewUUID(), recipientID, "New canteen order #1 placed.", false, now)
	require.NoError(t, err)
	alreadyRead, err := notification.RestoreNotification(kernel.NewUUID(), recipientID, "Canteen order #1 -> Ready", true, now.Add(-time.Hour))
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllByRecipient", mock.Anything, recipientID).
			Return([]*notification.Notification{unread, alreadyRead}, nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("MarkAllRead", mock.Anything, recipientID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReadNotificationsCommandHandler(factory)
	inbox, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)

	require.Len(t, inbox, 2)
	assert.True(t, inbox[0].WasUnread)
	assert.Equal(t, "New canteen order #1 placed.", inbox[0].Message)
	assert.False(t, inbox[1].WasUnread)
}

func TestReadNotificationsCommandHandler_Handle_EmptyInbox(t *testing.T) {
	ctx := t.Context()
	recipientID := kernel.NewUUID()
	cmd, err := commands.NewReadNotificationsCommand(recipientID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("GetAllByRecipient", mock.Anything, recipientID).
		Return([]*notification.Notification{}, nil).Once()
	notificationRepo.On("MarkAllRead", mock.Anything, recipientID).Return(nil).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReadNotificationsCommandHandler(factory)
	inbox, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestReadNotificationsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReadNotificationsCommand{} // not constructed properly
	factory := new(MockNotificationUoWFactory)
	h := commands.NewReadNotificationsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
