package fulfillment

import (
	"errors"
	"fmt"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
	"campus/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// the NewCart constructor.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartLineIsNotConstructed is returned when a CartLine was not created
	// through the NewCartLine constructor.
	ErrCartLineIsNotConstructed = errors.New("CartLine must be created via NewCartLine constructor")
)

// CartLine is one requested position of a cart: a menu item reference and a
// quantity. Names and prices are resolved by the creation handler against the
// menu, not trusted from the client.
type CartLine struct {
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewCartLine creates a validated cart line. Quantity must be positive.
func NewCartLine(itemID kernel.UUID, quantity int) (CartLine, error) {
	if err := itemID.Validate(); err != nil {
		return CartLine{}, err
	}
	if quantity <= 0 {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return CartLine{
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l CartLine) Validate() error {
	return l.guard.Validate(ErrCartLineIsNotConstructed)
}

// ItemID returns the referenced menu item.
func (l CartLine) ItemID() kernel.UUID {
	return l.itemID
}

// Quantity returns the requested quantity.
func (l CartLine) Quantity() int {
	return l.quantity
}

// Cart is the explicit order payload a calling surface passes into creation.
// The core holds no cross-request cart state; whatever a client accumulated
// arrives here as one immutable value.
type Cart struct {
	lines []CartLine

	guard guard.ConstructorGuard
}

// NewCart creates a validated cart. A cart must contain at least one line.
func NewCart(lines []CartLine) (Cart, error) {
	if len(lines) == 0 {
		return Cart{}, errs.NewValueIsRequiredError("cart lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return Cart{}, err
		}
	}

	copied := make([]CartLine, len(lines))
	copy(copied, lines)

	return Cart{
		lines: copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the cart was created through the constructor.
func (c Cart) Validate() error {
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Lines returns the cart positions in the order the client supplied them.
func (c Cart) Lines() []CartLine {
	copied := make([]CartLine, len(c.lines))
	copy(copied, c.lines)
	return copied
}
