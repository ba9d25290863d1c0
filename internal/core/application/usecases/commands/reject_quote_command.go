package commands

import (
	"errors"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrRejectQuoteCommandIsNotConstructed = errors.New(
		"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
	)
)

// RejectQuoteCommand declines a pending quote request.
// Rejection is terminal: no bids can be submitted or selected afterwards.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote request.
func NewRejectQuoteCommand(acting actor.Actor, quoteRequestID kernel.UUID) (RejectQuoteCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return RejectQuoteCommand{
		actor:          acting,
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c RejectQuoteCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c RejectQuoteCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}
