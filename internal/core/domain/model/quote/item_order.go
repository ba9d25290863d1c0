package quote

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
)

var (
	// ErrItemOrderIsNotConstructed is returned when an ItemOrder instance was
	// not created through a factory method.
	ErrItemOrderIsNotConstructed = errors.New("ItemOrder must be created via newItemOrder or RestoreItemOrder")
)

// ItemOrder is the post-confirmation fulfillment unit for one line item,
// bound to its winning bid and assigned chef. It exists if and only if the
// line item has an approved bid and the quote is confirmed.
//
// The agreed price is frozen at materialization as the winning unit price
// multiplied by the line item quantity.
type ItemOrder struct {
	// id is the unique identifier for the item order
	id kernel.UUID

	// lineItemID is the parent line item
	lineItemID kernel.UUID

	// chefBidID is the winning bid this order was materialized from
	chefBidID kernel.UUID

	// chefID is the chef assigned to prepare the item
	chefID kernel.UUID

	// price is the agreed total for the line item
	price kernel.Price

	// status tracks the preparation-to-receipt progression
	status OrderStatus
}

// newItemOrder materializes an ItemOrder from an approved bid.
// Only the aggregate calls this, during order confirmation; the order starts
// in pending_confirmation and is advanced to confirmed by the same action.
func newItemOrder(id, lineItemID, chefBidID, chefID kernel.UUID, price kernel.Price) (*ItemOrder, error) {
	if err := errors.Join(
		id.Validate(),
		lineItemID.Validate(),
		chefBidID.Validate(),
		chefID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	return &ItemOrder{
		id:         id,
		lineItemID: lineItemID,
		chefBidID:  chefBidID,
		chefID:     chefID,
		price:      price,
		status:     PendingConfirmation,
	}, nil
}

// RestoreItemOrder reconstructs an ItemOrder from persistence with an
// explicit status. Used by the repository layer.
func RestoreItemOrder(
	id, lineItemID, chefBidID, chefID kernel.UUID,
	price kernel.Price,
	status OrderStatus,
) (*ItemOrder, error) {
	if err := errors.Join(
		id.Validate(),
		lineItemID.Validate(),
		chefBidID.Validate(),
		chefID.Validate(),
		price.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &ItemOrder{
		id:         id,
		lineItemID: lineItemID,
		chefBidID:  chefBidID,
		chefID:     chefID,
		price:      price,
		status:     status,
	}, nil
}

// Validate ensures the ItemOrder instance was properly constructed.
func (o *ItemOrder) Validate() error {
	if o == nil || o.status == UnknownOrderStatus {
		return ErrItemOrderIsNotConstructed
	}
	return nil
}

// ID returns the item order's unique identifier.
func (o *ItemOrder) ID() kernel.UUID {
	return o.id
}

// LineItemID returns the parent line item's identifier.
func (o *ItemOrder) LineItemID() kernel.UUID {
	return o.lineItemID
}

// ChefBidID returns the winning bid's identifier.
func (o *ItemOrder) ChefBidID() kernel.UUID {
	return o.chefBidID
}

// ChefID returns the assigned chef's identifier.
// The dispatcher checks chef ownership against this value.
func (o *ItemOrder) ChefID() kernel.UUID {
	return o.chefID
}

// Price returns the agreed total for the line item.
func (o *ItemOrder) Price() kernel.Price {
	return o.price
}

// Status returns the current preparation-to-receipt status.
func (o *ItemOrder) Status() OrderStatus {
	return o.status
}

// confirm advances pending_confirmation -> confirmed during materialization.
func (o *ItemOrder) confirm() error {
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// StartProcessing advances confirmed -> processing.
func (o *ItemOrder) StartProcessing() error {
	next, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkReady advances processing -> ready_to_deliver.
func (o *ItemOrder) MarkReady() error {
	next, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// StartDelivery advances ready_to_deliver -> on_the_way.
func (o *ItemOrder) StartDelivery() error {
	next, err := o.status.StartDelivery()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkDelivered advances on_the_way -> delivered.
func (o *ItemOrder) MarkDelivered() error {
	next, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkReceived advances delivered -> received, the terminal status.
func (o *ItemOrder) MarkReceived() error {
	next, err := o.status.MarkReceived()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}
