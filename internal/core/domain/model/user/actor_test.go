package user_test

import (
	"testing"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create a student without a scope", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := user.NewActor(id, user.RoleStudent, user.ScopeUnknown)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, user.RoleStudent, actor.Role())
		assert.Equal(t, user.ScopeUnknown, actor.Scope())
		assert.False(t, actor.IsVendor())
	})

	t.Run("should create a vendor with a scope", func(t *testing.T) {
		actor, err := user.NewActor(kernel.NewUUID(), user.RoleVendor, user.ScopePrint)

		require.NoError(t, err)
		assert.True(t, actor.IsVendor())
		assert.Equal(t, user.ScopePrint, actor.Scope())
	})

	t.Run("should require a scope for vendors", func(t *testing.T) {
		_, err := user.NewActor(kernel.NewUUID(), user.RoleVendor, user.ScopeUnknown)
		assert.Error(t, err)
	})

	t.Run("should reject a scope on non-vendors", func(t *testing.T) {
		_, err := user.NewActor(kernel.NewUUID(), user.RoleStudent, user.ScopeCanteen)
		assert.Error(t, err)

		_, err = user.NewActor(kernel.NewUUID(), user.RoleAdmin, user.ScopePrint)
		assert.Error(t, err)
	})

	t.Run("should reject an invalid role", func(t *testing.T) {
		_, err := user.NewActor(kernel.NewUUID(), user.RoleUnknown, user.ScopeUnknown)
		assert.Error(t, err)
	})

	t.Run("should reject an invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := user.NewActor(invalidID, user.RoleStudent, user.ScopeUnknown)
		assert.Error(t, err)
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse known roles", func(t *testing.T) {
		tests := map[string]user.Role{
			"admin":   user.RoleAdmin,
			"student": user.RoleStudent,
			"vendor":  user.RoleVendor,
		}
		for input, want := range tests {
			role, err := user.RoleFromString(input)
			require.NoError(t, err)
			assert.Equal(t, want, role)
			assert.Equal(t, input, role.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := user.RoleFromString("superuser")
		assert.Error(t, err)

		_, err = user.RoleFromString("")
		assert.Error(t, err)
	})
}

func TestVendorScopeFromString(t *testing.T) {
	t.Run("should parse known scopes", func(t *testing.T) {
		tests := map[string]user.VendorScope{
			"canteen": user.ScopeCanteen,
			"print":   user.ScopePrint,
		}
		for input, want := range tests {
			scope, err := user.VendorScopeFromString(input)
			require.NoError(t, err)
			assert.Equal(t, want, scope)
			assert.Equal(t, input, scope.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := user.VendorScopeFromString("laundry")
		assert.Error(t, err)
	})
}
