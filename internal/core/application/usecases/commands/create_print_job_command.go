package commands

import (
	"errors"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

// ErrCreatePrintJobCommandIsNotConstructed is returned when a
// CreatePrintJobCommand was not created via the constructor.
var ErrCreatePrintJobCommandIsNotConstructed = errors.New(
	"CreatePrintJobCommand must be created via NewCreatePrintJobCommand constructor",
)

// CreatePrintJobCommand represents a student's request to submit a print job
// to one specific print vendor. The document reference is opaque; the upload
// itself is handled by a collaborator before this command is issued.
type CreatePrintJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	requesterID kernel.UUID
	vendorID    kernel.UUID
	spec        fulfillment.PrintSpec

	guard guard.ConstructorGuard
}

// NewCreatePrintJobCommand creates a command to submit a print job.
func NewCreatePrintJobCommand(
	jobID, requesterID, vendorID kernel.UUID,
	spec fulfillment.PrintSpec,
) (CreatePrintJobCommand, error) {
	jobCommand := CreatePrintJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setRequesterID(requesterID),
		jobCommand.setVendorID(vendorID),
		jobCommand.setSpec(spec),
	); err != nil {
		return CreatePrintJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePrintJobCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrintJobCommandIsNotConstructed)
}

// JobID returns the identifier the new job will carry.
func (c CreatePrintJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// RequesterID returns the student submitting the job.
func (c CreatePrintJobCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// VendorID returns the targeted print vendor.
func (c CreatePrintJobCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Spec returns the print payload.
func (c CreatePrintJobCommand) Spec() fulfillment.PrintSpec {
	return c.spec
}

func (c *CreatePrintJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreatePrintJobCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

func (c *CreatePrintJobCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreatePrintJobCommand) setSpec(spec fulfillment.PrintSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	c.spec = spec
	return nil
}
