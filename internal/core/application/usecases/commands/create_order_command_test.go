package commands_test

import (
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	cart := makeCart(t, kernel.NewUUID(), 2)

	cmd, err := commands.NewCreateOrderCommand(orderID, requesterID, cart)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.RequesterID().IsEqual(requesterID))
	assert.Len(t, cmd.Cart().Lines(), 1)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), makeCart(t, kernel.NewUUID(), 1))
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), fulfillment.Cart{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fulfillment.ErrCartIsNotConstructed)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
