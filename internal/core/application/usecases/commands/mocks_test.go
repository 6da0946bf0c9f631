package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/menu"
	"campus/internal/core/domain/model/notification"
	"campus/internal/core/domain/model/user"
	"campus/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFulfillmentRepository struct{ mock.Mock }

func (m *MockFulfillmentRepository) Add(ctx context.Context, f *fulfillment.Fulfillment) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFulfillmentRepository) Update(ctx context.Context, f *fulfillment.Fulfillment) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Fulfillment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Fulfillment), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) GetAllByRecipient(ctx context.Context, recipientID kernel.UUID) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID kernel.UUID) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}
func (m *MockMenuItemRepository) GetAllAvailable(_ context.Context) ([]*menu.MenuItem, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(_ context.Context, _ *user.User) error {
	return errors.New("not implemented in mock")
}
func (m *MockUserRepository) Get(_ context.Context, _ kernel.UUID) (*user.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) GetByUsername(_ context.Context, _ string) (*user.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) GetVendorsByScope(ctx context.Context, scope user.VendorScope) ([]*user.User, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}
func (m *MockUserRepository) VendorExists(ctx context.Context, id kernel.UUID, scope user.VendorScope) (bool, error) {
	args := m.Called(ctx, id, scope)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork satisfies every command-side unit of work interface.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) FulfillmentRepository() ports.FulfillmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentRepository)
}
func (m *MockUnitOfWork) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}
func (m *MockUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}
func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockCreatePrintJobUoWFactory struct{ mock.Mock }

func (m *MockCreatePrintJobUoWFactory) Create() commands.CreatePrintJobUoW {
	args := m.Called()
	return args.Get(0).(commands.CreatePrintJobUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeCart(t *testing.T, itemID kernel.UUID, quantity int) fulfillment.Cart {
	t.Helper()
	line, err := fulfillment.NewCartLine(itemID, quantity)
	require.NoError(t, err)
	cart, err := fulfillment.NewCart([]fulfillment.CartLine{line})
	require.NoError(t, err)
	return cart
}

func makePrintSpec(t *testing.T) fulfillment.PrintSpec {
	t.Helper()
	spec, err := fulfillment.NewPrintSpec("report.pdf", 2, fulfillment.ColorModeBW, fulfillment.BindingStaple)
	require.NoError(t, err)
	return spec
}

func makeVendorActor(t *testing.T, scope user.VendorScope) user.Actor {
	t.Helper()
	actor, err := user.NewActor(kernel.NewUUID(), user.RoleVendor, scope)
	require.NoError(t, err)
	return actor
}

func makeStudentActor(t *testing.T) user.Actor {
	t.Helper()
	actor, err := user.NewActor(kernel.NewUUID(), user.RoleStudent, user.ScopeUnknown)
	require.NoError(t, err)
	return actor
}

func makeVendorUser(t *testing.T, scope user.VendorScope) *user.User {
	t.Helper()
	vendor, err := user.NewUser(kernel.NewUUID(), "vendor-"+kernel.NewUUID().String()[:8], "Vendor", user.RoleVendor, scope)
	require.NoError(t, err)
	return vendor
}

func makeMenuItem(t *testing.T, rupees int64) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoneyFromRupees(rupees)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Idli", price)
	require.NoError(t, err)
	return item
}
