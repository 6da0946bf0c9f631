package ports

import "context"

// UnitOfWork coordinates a storage transaction across the repositories of
// one business operation. Every mutation of the lifecycle engine is a single
// atomic read-modify-write inside one unit of work; repositories obtained
// after Begin operate on the transaction, repositories obtained without an
// active transaction write through directly (used for the best-effort
// notification fan-out that must not join the primary write).
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	FulfillmentRepository() FulfillmentRepository
	NotificationRepository() NotificationRepository
	MenuItemRepository() MenuItemRepository
	UserRepository() UserRepository
}
