package quote

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// OrderStatus is the per-item preparation-to-receipt state of an ItemOrder.
//
// Fixed progression, one step per externally triggered action, no skips,
// no rollback:
//
//	pending_confirmation -> confirmed -> processing -> ready_to_deliver
//	    -> on_the_way -> delivered -> received (terminal)
//
// Each transition method validates the exact required from-state and
// returns an errs.InvalidTransitionError otherwise, naming both the
// current and the required status.
type OrderStatus int

const (
	// UnknownOrderStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized OrderStatus values.
	UnknownOrderStatus OrderStatus = iota

	// PendingConfirmation is the transient initial status at materialization.
	PendingConfirmation

	// Confirmed means the customer confirmed the whole order.
	Confirmed

	// Processing means the assigned chef started preparing the item.
	Processing

	// ReadyToDeliver means preparation is finished.
	ReadyToDeliver

	// OnTheWay means a delivery actor picked the item up.
	OnTheWay

	// Delivered means the item reached the party location.
	Delivered

	// Received means the customer acknowledged receipt; terminal.
	Received
)

func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		UnknownOrderStatus:  "unknown",
		PendingConfirmation: "pending_confirmation",
		Confirmed:           "confirmed",
		Processing:          "processing",
		ReadyToDeliver:      "ready_to_deliver",
		OnTheWay:            "on_the_way",
		Delivered:           "delivered",
		Received:            "received",
	}
}

func getValidOrderStatusStrings() map[OrderStatus]string {
	//nolint:exhaustive // UnknownOrderStatus is intentionally excluded as it's invalid
	return map[OrderStatus]string{
		PendingConfirmation: "pending_confirmation",
		Confirmed:           "confirmed",
		Processing:          "processing",
		ReadyToDeliver:      "ready_to_deliver",
		OnTheWay:            "on_the_way",
		Delivered:           "delivered",
		Received:            "received",
	}
}

// Validate checks if the OrderStatus value is valid.
func (s OrderStatus) Validate() error {
	if _, ok := getValidOrderStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the snake_case status name used in views and error messages.
// Implements the fmt.Stringer interface; safe to call on any value.
func (s OrderStatus) String() string {
	if str, ok := getOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// transition validates the exact required from-state and returns the next
// status. All public transition methods funnel through here so every
// misstep produces the same InvalidTransitionError shape.
func (s OrderStatus) transition(action string, required, next OrderStatus) (OrderStatus, error) {
	if s != required {
		return 0, errs.NewInvalidTransitionError(action, s.String(), required.String())
	}
	return next, nil
}

// Confirm transitions pending_confirmation -> confirmed.
// Triggered by the customer's "confirm order" action at materialization.
func (s OrderStatus) Confirm() (OrderStatus, error) {
	return s.transition("confirm order", PendingConfirmation, Confirmed)
}

// StartProcessing transitions confirmed -> processing.
// Triggered by the assigned chef.
func (s OrderStatus) StartProcessing() (OrderStatus, error) {
	return s.transition("start processing", Confirmed, Processing)
}

// MarkReady transitions processing -> ready_to_deliver.
// Triggered by the assigned chef.
func (s OrderStatus) MarkReady() (OrderStatus, error) {
	return s.transition("mark ready", Processing, ReadyToDeliver)
}

// StartDelivery transitions ready_to_deliver -> on_the_way.
// Triggered by a delivery actor.
func (s OrderStatus) StartDelivery() (OrderStatus, error) {
	return s.transition("start delivery", ReadyToDeliver, OnTheWay)
}

// MarkDelivered transitions on_the_way -> delivered.
// Triggered by a delivery actor.
func (s OrderStatus) MarkDelivered() (OrderStatus, error) {
	return s.transition("mark delivered", OnTheWay, Delivered)
}

// MarkReceived transitions delivered -> received, the terminal status.
// Triggered by the owning customer.
func (s OrderStatus) MarkReceived() (OrderStatus, error) {
	return s.transition("mark received", Delivered, Received)
}
