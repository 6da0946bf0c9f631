package fulfillment

import (
	"fmt"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
	"campus/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created
// through the NewOrderLine constructor.
var ErrOrderLineIsNotConstructed = fmt.Errorf("OrderLine must be created via NewOrderLine constructor")

// OrderLine is one priced position of a canteen order: the referenced menu
// item together with the name and unit price resolved at creation time.
// Lines are immutable; a later menu price change never touches placed orders.
type OrderLine struct {
	itemID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line. Quantity must be positive.
func NewOrderLine(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (OrderLine, error) {
	if err := itemID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if name == "" {
		return OrderLine{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderLine{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ItemID returns the referenced menu item.
func (l OrderLine) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name as resolved at creation.
func (l OrderLine) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price as resolved at creation.
func (l OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l OrderLine) Subtotal() kernel.Money {
	subtotal, _ := l.unitPrice.MultiplyBy(l.quantity)
	return subtotal
}

// ColorMode selects color or black-and-white printing.
type ColorMode int

const (
	// ColorModeUnknown represents an invalid or undefined color mode.
	ColorModeUnknown ColorMode = iota

	// ColorModeBW is black-and-white printing.
	ColorModeBW

	// ColorModeColor is full-color printing.
	ColorModeColor
)

func colorModeStrings() map[ColorMode]string {
	return map[ColorMode]string{
		ColorModeUnknown: "Unknown",
		ColorModeBW:      "bw",
		ColorModeColor:   "color",
	}
}

// ColorModeFromString parses a stored or surface-supplied color mode.
func ColorModeFromString(s string) (ColorMode, error) {
	for mode, str := range colorModeStrings() {
		if mode != ColorModeUnknown && str == s {
			return mode, nil
		}
	}
	return ColorModeUnknown, errs.NewValueIsInvalidErrorWithCause("color mode",
		fmt.Errorf("%q is not a valid color mode", s))
}

// Validate rejects ColorModeUnknown and out-of-range values.
func (m ColorMode) Validate() error {
	if m != ColorModeBW && m != ColorModeColor {
		return errs.NewValueIsInvalidErrorWithCause("color mode",
			fmt.Errorf("%d is not a valid color mode", m))
	}
	return nil
}

// String implements fmt.Stringer.
func (m ColorMode) String() string {
	if str, ok := colorModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Binding selects the finishing of a print job.
type Binding int

const (
	// BindingUnknown represents an invalid or undefined binding.
	BindingUnknown Binding = iota

	// BindingNone leaves the pages loose.
	BindingNone

	// BindingSpiral binds with a spiral.
	BindingSpiral

	// BindingStaple staples the pages.
	BindingStaple
)

func bindingStrings() map[Binding]string {
	return map[Binding]string{
		BindingUnknown: "Unknown",
		BindingNone:    "none",
		BindingSpiral:  "spiral",
		BindingStaple:  "staple",
	}
}

// BindingFromString parses a stored or surface-supplied binding.
func BindingFromString(s string) (Binding, error) {
	for binding, str := range bindingStrings() {
		if binding != BindingUnknown && str == s {
			return binding, nil
		}
	}
	return BindingUnknown, errs.NewValueIsInvalidErrorWithCause("binding",
		fmt.Errorf("%q is not a valid binding", s))
}

// Validate rejects BindingUnknown and out-of-range values.
func (b Binding) Validate() error {
	if b != BindingNone && b != BindingSpiral && b != BindingStaple {
		return errs.NewValueIsInvalidErrorWithCause("binding",
			fmt.Errorf("%d is not a valid binding", b))
	}
	return nil
}

// String implements fmt.Stringer.
func (b Binding) String() string {
	if str, ok := bindingStrings()[b]; ok {
		return str
	}
	return "Unknown"
}

// ErrPrintSpecIsNotConstructed is returned when a PrintSpec was not created
// through the NewPrintSpec constructor.
var ErrPrintSpecIsNotConstructed = fmt.Errorf("PrintSpec must be created via NewPrintSpec constructor")

// PrintSpec is the immutable payload of a print job. The document reference
// is opaque to the core; file storage is a collaborator concern.
type PrintSpec struct {
	documentRef string
	copies      int
	colorMode   ColorMode
	binding     Binding

	guard guard.ConstructorGuard
}

// NewPrintSpec creates a validated print payload. Copies must be positive.
func NewPrintSpec(documentRef string, copies int, colorMode ColorMode, binding Binding) (PrintSpec, error) {
	if documentRef == "" {
		return PrintSpec{}, errs.NewValueIsRequiredError("document reference")
	}
	if copies <= 0 {
		return PrintSpec{}, errs.NewValueIsInvalidErrorWithCause("copies",
			fmt.Errorf("%d is not greater than 0", copies))
	}
	if err := colorMode.Validate(); err != nil {
		return PrintSpec{}, err
	}
	if err := binding.Validate(); err != nil {
		return PrintSpec{}, err
	}

	return PrintSpec{
		documentRef: documentRef,
		copies:      copies,
		colorMode:   colorMode,
		binding:     binding,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the spec was created through the constructor.
func (p PrintSpec) Validate() error {
	return p.guard.Validate(ErrPrintSpecIsNotConstructed)
}

// DocumentRef returns the opaque reference to the uploaded document.
func (p PrintSpec) DocumentRef() string {
	return p.documentRef
}

// Copies returns the requested number of copies.
func (p PrintSpec) Copies() int {
	return p.copies
}

// ColorMode returns the requested color mode.
func (p PrintSpec) ColorMode() ColorMode {
	return p.colorMode
}

// Binding returns the requested binding.
func (p PrintSpec) Binding() Binding {
	return p.binding
}
