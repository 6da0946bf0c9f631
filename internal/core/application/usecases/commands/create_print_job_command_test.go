package commands_test

import (
	"testing"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePrintJobCommand_ValidInput(t *testing.T) {
	jobID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	spec := makePrintSpec(t)

	cmd, err := commands.NewCreatePrintJobCommand(jobID, requesterID, vendorID, spec)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.JobID().IsEqual(jobID))
	assert.True(t, cmd.RequesterID().IsEqual(requesterID))
	assert.True(t, cmd.VendorID().IsEqual(vendorID))
	assert.Equal(t, "report.pdf", cmd.Spec().DocumentRef())
}

func TestNewCreatePrintJobCommand_InvalidVendorID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreatePrintJobCommand(kernel.NewUUID(), kernel.NewUUID(), invalidID, makePrintSpec(t))
	require.Error(t, err)
}

func TestNewCreatePrintJobCommand_UnconstructedSpec(t *testing.T) {
	_, err := commands.NewCreatePrintJobCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), fulfillment.PrintSpec{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fulfillment.ErrPrintSpecIsNotConstructed)
}
