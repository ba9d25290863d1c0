package quote

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
)

var (
	// ErrChefBidIsNotConstructed is returned when a ChefBid instance was not
	// created through the NewChefBid or RestoreChefBid factory methods.
	ErrChefBidIsNotConstructed = errors.New("ChefBid must be created via NewChefBid constructor")
)

// ChefBid is one chef's proposed unit price for a specific line item.
// Bids form an append-only pool per line item; their status is the only
// mutable part, and it is mutated exclusively by the owning aggregate
// during selection.
type ChefBid struct {
	// id is the unique identifier for the bid
	id kernel.UUID

	// chefID identifies the bidding chef
	chefID kernel.UUID

	// unitPrice is the proposed price per unit of the line item
	unitPrice kernel.Price

	// status tracks the bid within the competing-offer pool
	status BidStatus

	// visibleToCustomer controls whether the customer view shows this bid
	visibleToCustomer bool

	// isConstructed ensures the bid was created via a factory method
	isConstructed bool
}

// NewChefBid creates a pending ChefBid with validation.
//
// Parameters:
//   - id: unique identifier for the bid (must be a valid UUID)
//   - chefID: the bidding chef (must be a valid UUID)
//   - unitPrice: proposed unit price (must be constructed via kernel.NewPrice)
//   - visibleToCustomer: visibility policy decided by the caller
func NewChefBid(id, chefID kernel.UUID, unitPrice kernel.Price, visibleToCustomer bool) (*ChefBid, error) {
	if err := errors.Join(
		id.Validate(),
		chefID.Validate(),
		unitPrice.Validate(),
	); err != nil {
		return nil, err
	}

	return &ChefBid{
		id:                id,
		chefID:            chefID,
		unitPrice:         unitPrice,
		status:            BidPending,
		visibleToCustomer: visibleToCustomer,
		isConstructed:     true,
	}, nil
}

// RestoreChefBid reconstructs a ChefBid from persistence with an explicit status.
// Used by the repository layer; validates all parts including the stored status.
func RestoreChefBid(
	id, chefID kernel.UUID,
	unitPrice kernel.Price,
	status BidStatus,
	visibleToCustomer bool,
) (*ChefBid, error) {
	if err := errors.Join(
		id.Validate(),
		chefID.Validate(),
		unitPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &ChefBid{
		id:                id,
		chefID:            chefID,
		unitPrice:         unitPrice,
		status:            status,
		visibleToCustomer: visibleToCustomer,
		isConstructed:     true,
	}, nil
}

// Validate ensures the ChefBid instance was properly constructed.
func (b *ChefBid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrChefBidIsNotConstructed
	}
	return nil
}

// IsEqual compares two bids by their unique identifiers.
func (b *ChefBid) IsEqual(other *ChefBid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *ChefBid) ID() kernel.UUID {
	return b.id
}

// ChefID returns the bidding chef's identifier.
func (b *ChefBid) ChefID() kernel.UUID {
	return b.chefID
}

// UnitPrice returns the proposed price per unit.
func (b *ChefBid) UnitPrice() kernel.Price {
	return b.unitPrice
}

// Status returns the bid's current status within the pool.
func (b *ChefBid) Status() BidStatus {
	return b.status
}

// IsVisibleToCustomer tells whether the customer view shows this bid.
func (b *ChefBid) IsVisibleToCustomer() bool {
	return b.visibleToCustomer
}

// approve marks the bid as the winner. Only the aggregate calls this,
// after resetting every sibling, so the one-approved-bid invariant holds.
func (b *ChefBid) approve() {
	b.status = BidApproved
}

// resetToPending returns an approved or pending bid to the open pool.
// Rejected bids stay rejected.
func (b *ChefBid) resetToPending() {
	if b.status != BidRejected {
		b.status = BidPending
	}
}
