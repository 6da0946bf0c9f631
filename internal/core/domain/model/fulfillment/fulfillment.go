package fulfillment

import (
	"errors"
	"fmt"
	"time"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
)

// ErrFulfillmentIsNotConstructed is returned when a Fulfillment instance was
// not created through one of the factory functions.
var ErrFulfillmentIsNotConstructed = errors.New("Fulfillment must be created via NewCanteenOrder, NewPrintJob or RestoreFulfillment")

// Fulfillment is the aggregate root for both canteen orders and print jobs.
// It owns the lifecycle state machine and the actor rules around it.
//
// Invariants:
//   - identifier, requester, fulfiller, payload, amount due, pickup code and
//     creation time are immutable after construction
//   - status only changes through Apply, which consults the transition table
//   - the paid flag only changes through MarkPaid, which is idempotent
//   - canteen orders address the canteen vendor class (no assigned vendor);
//     print jobs address exactly one assigned print vendor
//
// All mutating methods take the acting identity tuple and fail with a
// ForbiddenError when the actor is outside the fulfiller scope. Requesters
// have read-only access by construction: no mutating method accepts them.
type Fulfillment struct {
	id          kernel.UUID
	kind        Kind
	requesterID kernel.UUID

	// fulfillerScope is the vendor class that may act on this entity.
	fulfillerScope user.VendorScope

	// assignedVendorID pins a print job to one vendor; nil for canteen orders.
	assignedVendorID *kernel.UUID

	lines     []OrderLine
	printSpec *PrintSpec

	amountDue  kernel.Money
	status     Status
	paid       bool
	pickupCode PickupCode
	createdAt  time.Time

	isConstructed bool
}

// NewCanteenOrder creates a canteen order addressed to the canteen vendor
// class. The lines and amount due must already be resolved and priced; the
// aggregate stores them verbatim and never recomputes. Status starts at
// Created with the paid flag down.
func NewCanteenOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	lines []OrderLine,
	amountDue kernel.Money,
	pickupCode PickupCode,
) (*Fulfillment, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	f := &Fulfillment{
		kind:           KindCanteenOrder,
		fulfillerScope: user.ScopeCanteen,
		lines:          append([]OrderLine(nil), lines...),
		status:         Created,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setRequesterID(requesterID),
		f.setPickupCode(pickupCode),
	); err != nil {
		return nil, err
	}

	f.amountDue = amountDue
	return f, nil
}

// NewPrintJob creates a print job addressed to one specific print vendor.
// The spec and amount due must already be validated and priced. Status starts
// at Created with the paid flag down.
func NewPrintJob(
	id kernel.UUID,
	requesterID kernel.UUID,
	vendorID kernel.UUID,
	spec PrintSpec,
	amountDue kernel.Money,
	pickupCode PickupCode,
) (*Fulfillment, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	f := &Fulfillment{
		kind:             KindPrintJob,
		fulfillerScope:   user.ScopePrint,
		assignedVendorID: &vendorID,
		printSpec:        &spec,
		status:           Created,
		createdAt:        time.Now().UTC(),
		isConstructed:    true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setRequesterID(requesterID),
		f.setPickupCode(pickupCode),
	); err != nil {
		return nil, err
	}

	f.amountDue = amountDue
	return f, nil
}

// RestoreFulfillment reconstructs an aggregate from persistent storage.
// The kind decides which payload and fulfiller shape is required.
func RestoreFulfillment(
	id kernel.UUID,
	kind Kind,
	requesterID kernel.UUID,
	assignedVendorID *kernel.UUID,
	lines []OrderLine,
	printSpec *PrintSpec,
	amountDue kernel.Money,
	status Status,
	paid bool,
	pickupCode PickupCode,
	createdAt time.Time,
) (*Fulfillment, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var f *Fulfillment
	var err error
	switch kind {
	case KindCanteenOrder:
		if assignedVendorID != nil {
			return nil, errs.NewValueIsInvalidError("assigned vendor on canteen order")
		}
		f, err = NewCanteenOrder(id, requesterID, lines, amountDue, pickupCode)
	case KindPrintJob:
		if assignedVendorID == nil {
			return nil, errs.NewValueIsRequiredError("assigned vendor")
		}
		if printSpec == nil {
			return nil, errs.NewValueIsRequiredError("print spec")
		}
		f, err = NewPrintJob(id, requesterID, *assignedVendorID, *printSpec, amountDue, pickupCode)
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}
	if err != nil {
		return nil, err
	}

	f.status = status
	f.paid = paid
	f.createdAt = createdAt
	return f, nil
}

// Validate ensures the aggregate was created through a factory function.
func (f *Fulfillment) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFulfillmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two fulfillments by identifier.
func (f *Fulfillment) IsEqual(other *Fulfillment) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the unique identifier.
func (f *Fulfillment) ID() kernel.UUID {
	return f.id
}

// Kind returns the fulfillment variant.
func (f *Fulfillment) Kind() Kind {
	return f.kind
}

// RequesterID returns the owning student.
func (f *Fulfillment) RequesterID() kernel.UUID {
	return f.requesterID
}

// FulfillerScope returns the vendor class that may act on this entity.
func (f *Fulfillment) FulfillerScope() user.VendorScope {
	return f.fulfillerScope
}

// AssignedVendorID returns the pinned print vendor, or nil for canteen orders.
func (f *Fulfillment) AssignedVendorID() *kernel.UUID {
	return f.assignedVendorID
}

// Lines returns the order payload; empty for print jobs.
func (f *Fulfillment) Lines() []OrderLine {
	return append([]OrderLine(nil), f.lines...)
}

// PrintSpec returns the print payload, or nil for canteen orders.
func (f *Fulfillment) PrintSpec() *PrintSpec {
	return f.printSpec
}

// AmountDue returns the amount computed once at creation.
func (f *Fulfillment) AmountDue() kernel.Money {
	return f.amountDue
}

// Status returns the current lifecycle status.
func (f *Fulfillment) Status() Status {
	return f.status
}

// IsPaid reports whether the fulfiller has marked the entity paid.
func (f *Fulfillment) IsPaid() bool {
	return f.paid
}

// PickupCode returns the six-digit pickup secret.
func (f *Fulfillment) PickupCode() PickupCode {
	return f.pickupCode
}

// CreatedAt returns the creation time.
func (f *Fulfillment) CreatedAt() time.Time {
	return f.createdAt
}

// IsOwnedBy reports whether the given requester owns this entity.
func (f *Fulfillment) IsOwnedBy(requesterID kernel.UUID) bool {
	return f.requesterID.IsEqual(requesterID)
}

// Apply runs one lifecycle action on behalf of the acting vendor.
//
// The actor must belong to the entity's fulfiller scope, and for print jobs
// must be the one assigned vendor; violations fail with a ForbiddenError.
// Illegal moves from the current status fail with an InvalidTransitionError.
// On success the status advances per the transition table. The aggregate is
// never mutated on a failed call.
func (f *Fulfillment) Apply(actor user.Actor, action Action) error {
	if err := f.authorize(actor); err != nil {
		return err
	}

	newStatus, err := f.status.Apply(action)
	if err != nil {
		return err
	}

	f.status = newStatus
	return nil
}

// MarkPaid records that the fulfiller has received payment out-of-band.
// The same authorization as Apply holds. Marking an already-paid entity is a
// no-op, not an error, and the paid flag is not gated by status.
func (f *Fulfillment) MarkPaid(actor user.Actor) error {
	if err := f.authorize(actor); err != nil {
		return err
	}

	f.paid = true
	return nil
}

// authorize enforces the fulfiller rules: vendor role, matching scope, and
// for print jobs the one assigned vendor.
func (f *Fulfillment) authorize(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsVendor() || actor.Scope() != f.fulfillerScope {
		return errs.NewForbiddenError(actor.ID().String(), f.describe())
	}
	if f.assignedVendorID != nil && !actor.ID().IsEqual(*f.assignedVendorID) {
		return errs.NewForbiddenError(actor.ID().String(), f.describe())
	}
	return nil
}

func (f *Fulfillment) describe() string {
	return fmt.Sprintf("%s %s", f.kind, f.id)
}

func (f *Fulfillment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Fulfillment) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	f.requesterID = requesterID
	return nil
}

func (f *Fulfillment) setPickupCode(code PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	f.pickupCode = code
	return nil
}
