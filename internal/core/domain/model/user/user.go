package user

import (
	"errors"
	"time"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a stored account. The core reads users for vendor fan-out and
// reference validation; credentials and sessions live outside the core.
//
// Invariants:
//   - non-empty unique username
//   - valid role; vendor scope set if and only if the role is vendor
type User struct {
	id        kernel.UUID
	username  string
	fullName  string
	role      Role
	scope     VendorScope
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a validated account entity with the creation time set to now.
func NewUser(id kernel.UUID, username, fullName string, role Role, scope VendorScope) (*User, error) {
	return RestoreUser(id, username, fullName, role, scope, time.Now().UTC())
}

// RestoreUser reconstructs an account entity from persistent storage.
func RestoreUser(id kernel.UUID, username, fullName string, role Role, scope VendorScope, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if role == RoleVendor {
		if err := scope.Validate(); err != nil {
			return nil, err
		}
	} else if scope != ScopeUnknown {
		return nil, errs.NewValueIsInvalidError("vendor scope on non-vendor account")
	}

	return &User{
		id:            id,
		username:      username,
		fullName:      fullName,
		role:          role,
		scope:         scope,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the user was created through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// FullName returns the display name.
func (u *User) FullName() string {
	return u.fullName
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Scope returns the vendor scope, or ScopeUnknown for non-vendors.
func (u *User) Scope() VendorScope {
	return u.scope
}

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// AsActor returns the identity tuple for requests made by this account.
func (u *User) AsActor() (Actor, error) {
	return NewActor(u.id, u.role, u.scope)
}
