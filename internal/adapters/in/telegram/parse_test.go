package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("should parse /start", func(t *testing.T) {
		cmd, err := parseCommand("/start")
		require.NoError(t, err)
		assert.Equal(t, CommandStart, cmd.Name)
	})

	t.Run("should parse /menu", func(t *testing.T) {
		cmd, err := parseCommand(" /menu ")
		require.NoError(t, err)
		assert.Equal(t, CommandMenu, cmd.Name)
	})

	t.Run("should parse /status with an id", func(t *testing.T) {
		cmd, err := parseCommand("/status 3f2c9a4e-5d1b-4c8f-9e7a-2b6d8f0c1a3e")
		require.NoError(t, err)
		assert.Equal(t, CommandStatus, cmd.Name)
		assert.Equal(t, "3f2c9a4e-5d1b-4c8f-9e7a-2b6d8f0c1a3e", cmd.FulfillmentID)
	})

	t.Run("should reject /status without an id", func(t *testing.T) {
		_, err := parseCommand("/status")
		require.Error(t, err)
	})

	t.Run("should parse /order item and quantity", func(t *testing.T) {
		cmd, err := parseCommand("/order 3f2c9a4e-5d1b-4c8f-9e7a-2b6d8f0c1a3ex2")
		require.NoError(t, err)
		assert.Equal(t, CommandOrder, cmd.Name)
		assert.Equal(t, "3f2c9a4e-5d1b-4c8f-9e7a-2b6d8f0c1a3e", cmd.ItemID)
		assert.Equal(t, 2, cmd.Quantity)
	})

	t.Run("should reject /order with zero quantity", func(t *testing.T) {
		_, err := parseCommand("/order item-1x0")
		require.Error(t, err)
	})

	t.Run("should reject /order without a quantity", func(t *testing.T) {
		_, err := parseCommand("/order item-1")
		require.Error(t, err)

		_, err = parseCommand("/order item-1x")
		require.Error(t, err)
	})

	t.Run("should mark unsupported commands as unknown", func(t *testing.T) {
		cmd, err := parseCommand("/help")
		require.NoError(t, err)
		assert.Equal(t, CommandUnknown, cmd.Name)
	})

	t.Run("should reject plain messages", func(t *testing.T) {
		_, err := parseCommand("hello there")
		require.ErrorIs(t, err, errNotACommand)
	})
}

func TestParseOrderArgument(t *testing.T) {
	t.Run("should split on the last x", func(t *testing.T) {
		itemID, quantity, err := parseOrderArgument("0xabcx3")
		require.NoError(t, err)
		assert.Equal(t, "0xabc", itemID)
		assert.Equal(t, 3, quantity)
	})

	t.Run("should reject a missing item", func(t *testing.T) {
		_, _, err := parseOrderArgument("x3")
		require.Error(t, err)
	})

	t.Run("should reject a non-numeric quantity", func(t *testing.T) {
		_, _, err := parseOrderArgument("item-1xmany")
		require.Error(t, err)
	})
}
