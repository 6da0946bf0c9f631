package kernel_test

import (
	"testing"

	"campus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("should generate a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("should round-trip through a string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID
		assert.Error(t, id.Validate())
	})

	t.Run("should compare by value", func(t *testing.T) {
		id := kernel.NewUUID()
		same, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)

		assert.True(t, id.IsEqual(same))
		assert.False(t, id.IsEqual(kernel.NewUUID()))
	})
}
