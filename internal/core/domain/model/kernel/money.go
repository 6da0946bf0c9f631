package kernel

import (
	"fmt"

	"campus/internal/pkg/errs"
)

// Money is a fixed-point amount of rupees stored as paise. Amounts in the
// system are never negative: menu prices must be positive and computed totals
// start at zero. Money is immutable; arithmetic returns new values.
type Money struct {
	paise int64
}

// NewMoney creates a Money value from an amount in paise.
// Negative amounts are invalid.
func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d paise is negative", paise))
	}
	return Money{paise: paise}, nil
}

// NewMoneyFromRupees creates a Money value from whole rupees.
func NewMoneyFromRupees(rupees int64) (Money, error) {
	return NewMoney(rupees * 100)
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Paise returns the amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
func (m Money) MultiplyBy(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", qty))
	}
	return Money{paise: m.paise * int64(qty)}, nil
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String renders the amount as rupees with two decimals, e.g. "28.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.paise/100, m.paise%100)
}
