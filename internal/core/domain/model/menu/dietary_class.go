package menu

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// DietaryClass classifies a menu item as vegetarian or non-vegetarian.
// Guest counts on a quote request are split along the same axis.
type DietaryClass int

const (
	// UnknownDietaryClass represents an invalid or undefined class.
	UnknownDietaryClass DietaryClass = iota

	// Vegetarian marks a dish without meat or fish.
	Vegetarian

	// NonVegetarian marks a dish containing meat or fish.
	NonVegetarian
)

func getDietaryClassStrings() map[DietaryClass]string {
	return map[DietaryClass]string{
		UnknownDietaryClass: "unknown",
		Vegetarian:          "vegetarian",
		NonVegetarian:       "non-vegetarian",
	}
}

// Validate checks if the DietaryClass value is valid.
func (d DietaryClass) Validate() error {
	if d != Vegetarian && d != NonVegetarian {
		return errs.NewValueIsInvalidErrorWithCause("dietary class is invalid",
			fmt.Errorf("%d is not a valid dietary class", d))
	}
	return nil
}

// String returns the human-readable class name.
// Implements the fmt.Stringer interface.
func (d DietaryClass) String() string {
	if str, ok := getDietaryClassStrings()[d]; ok {
		return str
	}
	return "unknown"
}
