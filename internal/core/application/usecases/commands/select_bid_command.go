package commands

import (
	"errors"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrSelectBidCommandIsNotConstructed = errors.New(
		"SelectBidCommand must be created via NewSelectBidCommand constructor",
	)
)

// SelectBidCommand represents the customer's choice of a winning bid for
// one line item. Selection is a reset-then-approve sequence executed as a
// single atomic unit; re-selection is allowed until the order is confirmed.
type SelectBidCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID
	lineItemID     kernel.UUID
	bidID          kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectBidCommand creates a command to select a winning bid.
func NewSelectBidCommand(
	acting actor.Actor,
	quoteRequestID, lineItemID, bidID kernel.UUID,
) (SelectBidCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
		lineItemID.Validate(),
		bidID.Validate(),
	); err != nil {
		return SelectBidCommand{}, err
	}

	return SelectBidCommand{
		actor:          acting,
		quoteRequestID: quoteRequestID,
		lineItemID:     lineItemID,
		bidID:          bidID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectBidCommand) Validate() error {
	return c.guard.Validate(ErrSelectBidCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SelectBidCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c SelectBidCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}

// LineItemID returns the targeted line item.
func (c SelectBidCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// BidID returns the chosen bid.
func (c SelectBidCommand) BidID() kernel.UUID {
	return c.bidID
}
