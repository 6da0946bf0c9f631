package fulfillment_test

import (
	"testing"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartLine(t *testing.T) {
	t.Run("should create with positive quantity", func(t *testing.T) {
		itemID := kernel.NewUUID()

		line, err := fulfillment.NewCartLine(itemID, 3)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ItemID().IsEqual(itemID))
		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := fulfillment.NewCartLine(kernel.NewUUID(), quantity)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject invalid item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := fulfillment.NewCartLine(invalidID, 1)
		require.Error(t, err)
	})
}

func TestNewCart(t *testing.T) {
	t.Run("should reject an empty cart", func(t *testing.T) {
		_, err := fulfillment.NewCart(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should copy the lines", func(t *testing.T) {
		line, err := fulfillment.NewCartLine(kernel.NewUUID(), 1)
		require.NoError(t, err)
		input := []fulfillment.CartLine{line}

		cart, err := fulfillment.NewCart(input)
		require.NoError(t, err)

		other, err := fulfillment.NewCartLine(kernel.NewUUID(), 2)
		require.NoError(t, err)
		input[0] = other

		assert.True(t, cart.Lines()[0].ItemID().IsEqual(line.ItemID()))
	})

	t.Run("should reject unconstructed lines", func(t *testing.T) {
		_, err := fulfillment.NewCart([]fulfillment.CartLine{{}})
		require.Error(t, err)
	})
}
