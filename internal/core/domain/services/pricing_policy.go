package services

import (
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
)

// Print pricing constants: a flat base fee plus a per-copy rate depending on
// color mode. Page counts are unknown to the system, so the rate is per copy.
const (
	printBaseFeePaise   int64 = 500
	printColorCopyPaise int64 = 300
	printBWCopyPaise    int64 = 150
)

// PricingPolicy computes the amount due from a creation payload. It is a
// pure function of the payload: no side effects, called exactly once at
// creation, and its result is stored on the aggregate forever.
//
// Example:
//
//	policy := services.NewPricingPolicy()
//	amount := policy.PriceOrder(lines)
//	order, err := fulfillment.NewCanteenOrder(id, studentID, lines, amount, code)
type PricingPolicy struct{}

// NewPricingPolicy creates a PricingPolicy instance.
func NewPricingPolicy() PricingPolicy {
	return PricingPolicy{}
}

// PriceOrder sums unit price times quantity over all lines.
func (PricingPolicy) PriceOrder(lines []fulfillment.OrderLine) kernel.Money {
	total := kernel.Zero()
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// PricePrintJob prices a print job as base fee plus copies times the
// color-dependent rate. Binding does not affect the price.
func (PricingPolicy) PricePrintJob(spec fulfillment.PrintSpec) kernel.Money {
	rate := printBWCopyPaise
	if spec.ColorMode() == fulfillment.ColorModeColor {
		rate = printColorCopyPaise
	}

	total, _ := kernel.NewMoney(printBaseFeePaise + int64(spec.Copies())*rate)
	return total
}
