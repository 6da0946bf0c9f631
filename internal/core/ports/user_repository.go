package ports

import (
	"context"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
)

// UserRepository defines the account lookups the lifecycle engine needs:
// vendor fan-out targets, reference validation at creation, and username
// resolution for the chat surface. Account creation exists for seeding and
// the admin surface; credential handling lives outside the core entirely.
type UserRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, u *user.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves an account by its unique login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetVendorsByScope returns all vendor accounts of a vendor class.
	// Creation-side notification fan-out for canteen orders runs over this.
	GetVendorsByScope(ctx context.Context, scope user.VendorScope) ([]*user.User, error)

	// VendorExists reports whether a vendor account with the given identifier
	// and scope exists. Used to validate the print job target at creation.
	VendorExists(ctx context.Context, id kernel.UUID, scope user.VendorScope) (bool, error)
}
