package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Price is a value object representing a monetary amount expressed in cents.
// Storing cents as int64 avoids floating point rounding in bid and order
// totals. The zero value is invalid; use NewPrice to construct.
//
// Price is immutable and safe for concurrent use.
//
// Example:
//
//	unitPrice, err := kernel.NewPrice(4500) // $45.00
//	if err != nil {
//	    // handle validation error
//	}
//	total := unitPrice.MultiplyQuantity(2) // $90.00
type Price struct {
	cents int64

	isConstructed bool
}

// NewPrice creates a Price from an amount in cents.
// The amount must be greater than zero.
//
// Returns:
//   - Price: the created value object if validation passes
//   - error: ValueIsInvalidError if the amount is not positive
func NewPrice(cents int64) (Price, error) {
	if cents <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", cents))
	}
	return Price{cents: cents, isConstructed: true}, nil
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// MultiplyQuantity returns the total price for the given quantity of units.
func (p Price) MultiplyQuantity(quantity int) Price {
	return Price{cents: p.cents * int64(quantity), isConstructed: true}
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{cents: p.cents + other.cents, isConstructed: true}
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// String renders the price as dollars with two decimal places, e.g. "45.00".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// Validate checks that the Price was created via NewPrice.
// A zero-value Price fails validation.
func (p Price) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("price must be created via NewPrice")
	}
	return nil
}
