package commands

import (
	"errors"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via the NewCreateOrderCommand constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a student's request to place a canteen order.
// The cart is an explicit value supplied by the calling surface; the core
// holds no session cart of its own.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, studentID, cart)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	cart        fulfillment.Cart

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a canteen order.
// The order ID and requester must be valid and the cart non-empty.
func NewCreateOrderCommand(orderID, requesterID kernel.UUID, cart fulfillment.Cart) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRequesterID(requesterID),
		orderCommand.setCart(cart),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the student placing the order.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Cart returns the requested items.
func (c CreateOrderCommand) Cart() fulfillment.Cart {
	return c.cart
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

func (c *CreateOrderCommand) setCart(cart fulfillment.Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}
	c.cart = cart
	return nil
}
