package fulfillment

import (
	"fmt"
	"math/rand/v2"

	"campus/internal/pkg/errs"
)

// PickupCode is the six-digit secret generated at creation and compared by a
// human at physical pickup. The system itself never verifies it, it is
// generated exactly once per entity, and collisions across entities are
// tolerated: this is a per-order secret, not a global key.
type PickupCode struct {
	value string
}

// NewRandomPickupCode generates a fresh code in the range 100000-999999.
func NewRandomPickupCode() PickupCode {
	return PickupCode{value: fmt.Sprintf("%06d", rand.IntN(900000)+100000)}
}

// PickupCodeFromString reconstructs a code from persistence. The value must
// be exactly six decimal digits.
func PickupCodeFromString(s string) (PickupCode, error) {
	if len(s) != 6 {
		return PickupCode{}, errs.NewValueIsInvalidErrorWithCause("pickup code",
			fmt.Errorf("%q is not six digits", s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return PickupCode{}, errs.NewValueIsInvalidErrorWithCause("pickup code",
				fmt.Errorf("%q is not six digits", s))
		}
	}
	return PickupCode{value: s}, nil
}

// String returns the six-digit code.
func (c PickupCode) String() string {
	return c.value
}

// Validate rejects the zero value.
func (c PickupCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("pickup code")
	}
	return nil
}

// IsEqual reports whether two codes carry the same digits.
func (c PickupCode) IsEqual(other PickupCode) bool {
	return c.value == other.value
}
