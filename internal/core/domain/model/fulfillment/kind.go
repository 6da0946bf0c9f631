package fulfillment

import (
	"fmt"

	"campus/internal/pkg/errs"
)

// Kind distinguishes the two fulfillment variants. The lifecycle is identical
// for both; the kind only determines the payload shape and how the fulfiller
// is addressed (canteen vendor class vs one specific print vendor).
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindCanteenOrder is a food order addressed to the canteen vendor class.
	KindCanteenOrder

	// KindPrintJob is a print job addressed to one specific print vendor.
	KindPrintJob
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "Unknown",
		KindCanteenOrder: "canteen",
		KindPrintJob:     "print",
	}
}

// KindFromString parses a stored or surface-supplied kind name.
func KindFromString(s string) (Kind, error) {
	for kind, str := range kindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid fulfillment kind", s))
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k != KindCanteenOrder && k != KindPrintJob {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid fulfillment kind", k))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (k Kind) String() string {
	if str, ok := kindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
