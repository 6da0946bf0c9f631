package user

import (
	"fmt"

	"campus/internal/pkg/errs"
)

// Role is the closed set of account roles.
type Role int

const (
	// RoleUnknown marks an uninitialized Role value.
	RoleUnknown Role = iota

	// RoleAdmin is the single administrator account.
	RoleAdmin

	// RoleStudent requests canteen orders and print jobs.
	RoleStudent

	// RoleVendor fulfills orders within its vendor scope.
	RoleVendor
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleAdmin:   "admin",
		RoleStudent: "student",
		RoleVendor:  "vendor",
	}
}

// RoleFromString parses a stored or claimed role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleStudent && r != RoleVendor {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// VendorScope is the vendor class a vendor account belongs to. Canteen
// vendors act as a class on any canteen order; print vendors act only on
// jobs assigned to them specifically.
type VendorScope int

const (
	// ScopeUnknown marks a non-vendor account or an uninitialized value.
	ScopeUnknown VendorScope = iota

	// ScopeCanteen is the canteen vendor class.
	ScopeCanteen

	// ScopePrint is the print-shop vendor class.
	ScopePrint
)

func scopeStrings() map[VendorScope]string {
	return map[VendorScope]string{
		ScopeUnknown: "Unknown",
		ScopeCanteen: "canteen",
		ScopePrint:   "print",
	}
}

// VendorScopeFromString parses a stored or claimed vendor scope name.
func VendorScopeFromString(s string) (VendorScope, error) {
	for scope, str := range scopeStrings() {
		if scope != ScopeUnknown && str == s {
			return scope, nil
		}
	}
	return ScopeUnknown, errs.NewValueIsInvalidErrorWithCause("vendor scope",
		fmt.Errorf("%q is not a valid vendor scope", s))
}

// Validate rejects ScopeUnknown and out-of-range values.
func (s VendorScope) Validate() error {
	if s != ScopeCanteen && s != ScopePrint {
		return errs.NewValueIsInvalidErrorWithCause("vendor scope",
			fmt.Errorf("%d is not a valid vendor scope", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s VendorScope) String() string {
	if str, ok := scopeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
