package commands

import (
	"errors"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrSubmitBidCommandIsNotConstructed = errors.New(
		"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
	)
)

// SubmitBidCommand represents a chef's price offer for one line item.
// Bids can only be submitted while the quote is pending, and a chef may
// hold at most one open bid per line item.
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	actor             actor.Actor
	quoteRequestID    kernel.UUID
	lineItemID        kernel.UUID
	bidID             kernel.UUID
	unitPrice         kernel.Price
	visibleToCustomer bool

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand creates a command to submit a bid.
// Validates the acting identity, all identifiers, and the unit price.
func NewSubmitBidCommand(
	acting actor.Actor,
	quoteRequestID, lineItemID, bidID kernel.UUID,
	unitPrice kernel.Price,
	visibleToCustomer bool,
) (SubmitBidCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
		lineItemID.Validate(),
		bidID.Validate(),
		unitPrice.Validate(),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return SubmitBidCommand{
		actor:             acting,
		quoteRequestID:    quoteRequestID,
		lineItemID:        lineItemID,
		bidID:             bidID,
		unitPrice:         unitPrice,
		visibleToCustomer: visibleToCustomer,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SubmitBidCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c SubmitBidCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}

// LineItemID returns the targeted line item.
func (c SubmitBidCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// BidID returns the identifier for the new bid.
func (c SubmitBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// UnitPrice returns the proposed price per unit.
func (c SubmitBidCommand) UnitPrice() kernel.Price {
	return c.unitPrice
}

// VisibleToCustomer returns the visibility policy for the bid.
func (c SubmitBidCommand) VisibleToCustomer() bool {
	return c.visibleToCustomer
}
