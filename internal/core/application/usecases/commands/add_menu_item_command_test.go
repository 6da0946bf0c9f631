package commands_test

import (
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddMenuItemCommand_ValidInput(t *testing.T) {
	itemID := kernel.NewUUID()
	actor := makeVendorActor(t, user.ScopeCanteen)
	price, err := kernel.NewMoneyFromRupees(10)
	require.NoError(t, err)

	cmd, err := commands.NewAddMenuItemCommand(itemID, actor, "Idli", price)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ItemID().IsEqual(itemID))
	assert.Equal(t, "Idli", cmd.Name())
	assert.Equal(t, int64(1000), cmd.Price().Paise())
}

func TestNewAddMenuItemCommand_EmptyName(t *testing.T) {
	price, err := kernel.NewMoneyFromRupees(10)
	require.NoError(t, err)

	_, err = commands.NewAddMenuItemCommand(kernel.NewUUID(), makeVendorActor(t, user.ScopeCanteen), "", price)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddMenuItemCommand_ZeroPrice(t *testing.T) {
	_, err := commands.NewAddMenuItemCommand(kernel.NewUUID(), makeVendorActor(t, user.ScopeCanteen), "Idli", kernel.Zero())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
