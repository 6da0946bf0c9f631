package user

import (
	"errors"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the trusted identity tuple of the current request: who is acting,
// in which role, and — for vendors — within which vendor scope. The tuple is
// supplied by the identity collaborator (the HTTP middleware) and taken
// verbatim; the core only uses it for authorization decisions.
//
// Actor is a value object: immutable and comparable by its fields.
type Actor struct {
	id    kernel.UUID
	role  Role
	scope VendorScope

	guard guard.ConstructorGuard
}

// NewActor creates a validated actor tuple. Vendors must carry a valid vendor
// scope; admins and students must not carry one.
func NewActor(id kernel.UUID, role Role, scope VendorScope) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	if role == RoleVendor {
		if err := scope.Validate(); err != nil {
			return Actor{}, err
		}
	} else if scope != ScopeUnknown {
		return Actor{}, errors.New("only vendors carry a vendor scope")
	}

	return Actor{
		id:    id,
		role:  role,
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// Scope returns the vendor scope, or ScopeUnknown for non-vendors.
func (a Actor) Scope() VendorScope {
	return a.scope
}

// IsVendor reports whether the actor is a vendor account.
func (a Actor) IsVendor() bool {
	return a.role == RoleVendor
}
