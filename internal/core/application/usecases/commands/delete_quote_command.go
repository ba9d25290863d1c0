package commands

import (
	"errors"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrDeleteQuoteCommandIsNotConstructed = errors.New(
		"DeleteQuoteCommand must be created via NewDeleteQuoteCommand constructor",
	)
)

// DeleteQuoteCommand removes a quote request and everything that hangs off
// it: line items, chef bids, and item orders, all-or-nothing. This is the
// only way an aggregate is ever physically deleted.
type DeleteQuoteCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteQuoteCommand creates a command to cascade-delete a quote request.
func NewDeleteQuoteCommand(acting actor.Actor, quoteRequestID kernel.UUID) (DeleteQuoteCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return DeleteQuoteCommand{}, err
	}

	return DeleteQuoteCommand{
		actor:          acting,
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteQuoteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteQuoteCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c DeleteQuoteCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c DeleteQuoteCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}
