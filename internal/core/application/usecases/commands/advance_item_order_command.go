package commands

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrAdvanceItemOrderCommandIsNotConstructed = errors.New(
		"AdvanceItemOrderCommand must be created via NewAdvanceItemOrderCommand constructor",
	)
)

// OrderAction names one step of the per-item preparation-to-receipt
// progression. Each action is bound to the role allowed to trigger it;
// together they form the transition table the dispatcher authorizes against.
type OrderAction int

const (
	// UnknownOrderAction represents an invalid or undefined action.
	UnknownOrderAction OrderAction = iota

	// ActionStartProcessing advances confirmed -> processing (assigned chef).
	ActionStartProcessing

	// ActionMarkReady advances processing -> ready_to_deliver (assigned chef).
	ActionMarkReady

	// ActionStartDelivery advances ready_to_deliver -> on_the_way (delivery).
	ActionStartDelivery

	// ActionMarkDelivered advances on_the_way -> delivered (delivery).
	ActionMarkDelivered

	// ActionMarkReceived advances delivered -> received (owning customer).
	ActionMarkReceived
)

func getOrderActionStrings() map[OrderAction]string {
	return map[OrderAction]string{
		UnknownOrderAction:    "unknown",
		ActionStartProcessing: "start processing",
		ActionMarkReady:       "mark ready",
		ActionStartDelivery:   "start delivery",
		ActionMarkDelivered:   "mark delivered",
		ActionMarkReceived:    "mark received",
	}
}

// getOrderActionRoles maps each action to the single role allowed to trigger it.
func getOrderActionRoles() map[OrderAction]actor.Role {
	return map[OrderAction]actor.Role{
		ActionStartProcessing: actor.Chef,
		ActionMarkReady:       actor.Chef,
		ActionStartDelivery:   actor.Delivery,
		ActionMarkDelivered:   actor.Delivery,
		ActionMarkReceived:    actor.Customer,
	}
}

// Validate checks if the OrderAction value is valid.
func (a OrderAction) Validate() error {
	if _, ok := getOrderActionRoles()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order action is invalid",
			fmt.Errorf("%d is not a valid order action", a))
	}
	return nil
}

// String returns the human-readable action name used in error messages.
// Implements the fmt.Stringer interface; safe to call on any value.
func (a OrderAction) String() string {
	if str, ok := getOrderActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// RequiredRole returns the role allowed to trigger the action.
func (a OrderAction) RequiredRole() actor.Role {
	return getOrderActionRoles()[a]
}

// AdvanceItemOrderCommand advances one line item's order a single step
// along the fixed progression. The action determines both the required
// from-state (checked by the aggregate) and the required role and ownership
// (checked by the handler).
type AdvanceItemOrderCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID
	lineItemID     kernel.UUID
	action         OrderAction

	guard guard.ConstructorGuard
}

// NewAdvanceItemOrderCommand creates a command to advance an item order.
func NewAdvanceItemOrderCommand(
	acting actor.Actor,
	quoteRequestID, lineItemID kernel.UUID,
	action OrderAction,
) (AdvanceItemOrderCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
		lineItemID.Validate(),
		action.Validate(),
	); err != nil {
		return AdvanceItemOrderCommand{}, err
	}

	return AdvanceItemOrderCommand{
		actor:          acting,
		quoteRequestID: quoteRequestID,
		lineItemID:     lineItemID,
		action:         action,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceItemOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c AdvanceItemOrderCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c AdvanceItemOrderCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}

// LineItemID returns the line item whose order is advanced.
func (c AdvanceItemOrderCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Action returns the requested progression step.
func (c AdvanceItemOrderCommand) Action() OrderAction {
	return c.action
}
