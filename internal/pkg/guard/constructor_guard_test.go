package guard_test

import (
	"errors"
	"testing"

	"campus/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("should pass validation when constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("should fail validation for the zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		errNotConstructed := errors.New("not constructed")

		assert.ErrorIs(t, g.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("should fall back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}
