package quote

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem or RestoreLineItem factory methods.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrBidAlreadyOpen is returned when a chef submits a second bid for a
	// line item while an earlier non-rejected bid of the same chef is still open.
	ErrBidAlreadyOpen = errors.New("chef already has an open bid for this line item")
)

// LineItem is one menu item plus quantity within a quote request.
// It is created atomically with its parent and immutable thereafter;
// only its bid pool and item order change, and only through the aggregate.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// menuItemID references the ordered menu item by id (not copied)
	menuItemID kernel.UUID

	// quantity is the ordered amount (must be positive)
	quantity int

	// bids is the competing-offer pool, append-only
	bids []*ChefBid

	// itemOrder is the fulfillment unit, nil until the quote is confirmed
	itemOrder *ItemOrder

	// isConstructed ensures the line item was created via a factory method
	isConstructed bool
}

// NewLineItem creates a LineItem with validation and an empty bid pool.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - menuItemID: referenced menu item (must be a valid UUID)
//   - quantity: ordered amount (must be greater than 0)
func NewLineItem(id, menuItemID kernel.UUID, quantity int) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence together with its
// bid pool and optional item order. Used by the repository layer.
func RestoreLineItem(
	id, menuItemID kernel.UUID,
	quantity int,
	bids []*ChefBid,
	itemOrder *ItemOrder,
) (*LineItem, error) {
	item, err := NewLineItem(id, menuItemID, quantity)
	if err != nil {
		return nil, err
	}

	for _, bid := range bids {
		if bidErr := bid.Validate(); bidErr != nil {
			return nil, bidErr
		}
	}
	if itemOrder != nil {
		if orderErr := itemOrder.Validate(); orderErr != nil {
			return nil, orderErr
		}
	}

	item.bids = bids
	item.itemOrder = itemOrder
	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (li *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && li.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// MenuItemID returns the referenced menu item's identifier.
func (li *LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns the ordered amount.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Bids returns the competing-offer pool.
// The returned slice is a copy; bids themselves are shared.
func (li *LineItem) Bids() []*ChefBid {
	bids := make([]*ChefBid, len(li.bids))
	copy(bids, li.bids)
	return bids
}

// ApprovedBid returns the single approved bid, or nil if none is approved.
func (li *LineItem) ApprovedBid() *ChefBid {
	for _, bid := range li.bids {
		if bid.Status() == BidApproved {
			return bid
		}
	}
	return nil
}

// ItemOrder returns the fulfillment unit, or nil before confirmation.
func (li *LineItem) ItemOrder() *ItemOrder {
	return li.itemOrder
}

// submitBid appends a bid to the pool.
// A chef may hold at most one open (non-rejected) bid per line item;
// re-submission while one is open fails with ErrBidAlreadyOpen.
func (li *LineItem) submitBid(bid *ChefBid) error {
	if err := bid.Validate(); err != nil {
		return err
	}

	for _, existing := range li.bids {
		if existing.ChefID().IsEqual(bid.ChefID()) && existing.Status().IsOpen() {
			return ErrBidAlreadyOpen
		}
	}

	li.bids = append(li.bids, bid)
	return nil
}

// selectBid resolves the pool in two steps: every sibling bid is explicitly
// reset to pending, then the chosen bid is approved. The aggregate persists
// the whole mutation in one transaction, so no partial state is ever visible
// and at most one bid is approved at any time.
func (li *LineItem) selectBid(bidID kernel.UUID) error {
	chosen := li.bidByID(bidID)
	if chosen == nil {
		return errs.NewObjectNotFoundError("chefBidId", bidID.String())
	}
	if chosen.Status() == BidRejected {
		return errs.NewValueIsInvalidErrorWithCause("bid",
			fmt.Errorf("bid %s is rejected and cannot be selected", bidID))
	}

	for _, bid := range li.bids {
		if !bid.IsEqual(chosen) {
			bid.resetToPending()
		}
	}
	chosen.approve()

	return nil
}

// bidByID finds a bid in the pool by id.
func (li *LineItem) bidByID(bidID kernel.UUID) *ChefBid {
	for _, bid := range li.bids {
		if bid.ID().IsEqual(bidID) {
			return bid
		}
	}
	return nil
}

// materializeOrder creates the item order from the approved bid at
// confirmation time. The agreed price is the winning unit price multiplied
// by the quantity. Fails if no bid is approved or an order already exists.
func (li *LineItem) materializeOrder(orderID kernel.UUID) error {
	if li.itemOrder != nil {
		return errs.NewValueIsInvalidErrorWithCause("itemOrder",
			fmt.Errorf("line item %s already has an item order", li.id))
	}

	approved := li.ApprovedBid()
	if approved == nil {
		return errs.NewInvalidTransitionError("confirm order", QuotePending.String(), QuoteApproved.String())
	}

	order, err := newItemOrder(
		orderID,
		li.id,
		approved.ID(),
		approved.ChefID(),
		approved.UnitPrice().MultiplyQuantity(li.quantity),
	)
	if err != nil {
		return err
	}

	if err = order.confirm(); err != nil {
		return err
	}

	li.itemOrder = order
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	li.menuItemID = menuItemID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
