package actor

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Role represents the part an actor plays in the catering workflow.
// Commands are authorized against the acting role before the lifecycle
// engine is ever invoked.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer owns quote requests: creates them, selects winning bids,
	// confirms orders, and marks them received.
	Customer

	// Chef bids on line items and advances preparation of its own item orders.
	Chef

	// Delivery advances item orders through the shipment states.
	Delivery

	// Admin performs administrative actions such as rejecting a quote
	// or cascading deletion of a whole aggregate.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Chef:        "chef",
		Delivery:    "delivery",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Chef:     "chef",
		Delivery: "delivery",
		Admin:    "admin",
	}
}

// RoleFromString parses a role claim as issued by the identity service.
// Returns an error for any string that is not one of the four known roles.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Chef, Delivery, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name used in token claims and logs.
// Implements the fmt.Stringer interface; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
