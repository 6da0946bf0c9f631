// Package commands contains the business operations that modify system
// state: fulfillment creation, lifecycle transitions, payment marking, the
// notification read-sweep and menu maintenance. All commands follow the same
// pattern: a validated command value, a handler, and a transaction scoped to
// one unit of work.
package commands

import (
	"context"

	"campus/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command declares the narrowest repository set it needs.
type (
	// TxManager handles the storage transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FulfillmentRepoFactory provides access to the fulfillment repository
	// within a transaction.
	FulfillmentRepoFactory interface {
		FulfillmentRepository() ports.FulfillmentRepository
	}

	// NotificationRepoFactory provides access to the notification repository.
	// Obtained after commit it writes through directly, which is how the
	// best-effort fan-out stays non-transactional with the primary write.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// UserRepoFactory provides access to the account repository.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// FulfillmentUoW manages transactions for lifecycle mutations
	// (transition, mark-paid): one aggregate row plus the follow-up
	// notification to the requester.
	FulfillmentUoW interface {
		TxManager
		FulfillmentRepoFactory
		NotificationRepoFactory
	}

	// FulfillmentUoWFactory creates FulfillmentUoW instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// CreateOrderUoW manages transactions for canteen order creation:
	// menu resolution, the insert, and the vendor-class fan-out.
	CreateOrderUoW interface {
		TxManager
		FulfillmentRepoFactory
		NotificationRepoFactory
		MenuItemRepoFactory
		UserRepoFactory
	}

	// CreateOrderUoWFactory creates CreateOrderUoW instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// CreatePrintJobUoW manages transactions for print job creation:
	// vendor validation, the insert, and the single-vendor notification.
	CreatePrintJobUoW interface {
		TxManager
		FulfillmentRepoFactory
		NotificationRepoFactory
		UserRepoFactory
	}

	// CreatePrintJobUoWFactory creates CreatePrintJobUoW instances.
	CreatePrintJobUoWFactory interface {
		Create() CreatePrintJobUoW
	}

	// NotificationUoW manages transactions for the read-sweep.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates NotificationUoW instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// MenuUoW manages transactions for menu maintenance.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates MenuUoW instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}
)
