package commands

import (
	"errors"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand freezes an approved quote and materializes one item
// order per line item from its approved bid. After confirmation the bid
// layer is immutable.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an approved quote.
func NewConfirmOrderCommand(acting actor.Actor, quoteRequestID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(
		acting.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		actor:          acting,
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c ConfirmOrderCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the targeted quote request.
func (c ConfirmOrderCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}
