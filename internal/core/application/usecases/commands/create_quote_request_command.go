package commands

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrCreateQuoteRequestCommandIsNotConstructed = errors.New(
		"CreateQuoteRequestCommand must be created via NewCreateQuoteRequestCommand constructor",
	)
	ErrLineItemInputsAreRequired = errors.New("at least one line item is required")
)

// LineItemInput is one requested menu item plus quantity within a new quote.
type LineItemInput struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateQuoteRequestCommand represents a customer's request for a party quote.
// Encapsulates the party details and the requested line items; the line items
// are persisted atomically with the quote request.
//
// Example:
//
//	quoteID := kernel.NewUUID()
//	cmd, err := NewCreateQuoteRequestCommand(customer, quoteID, partyDate,
//	    "Hall A", 10, 0, items)
//	if err != nil {
//	    return fmt.Errorf("invalid quote data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create quote: %w", err)
//	}
type CreateQuoteRequestCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	quoteRequestID kernel.UUID
	partyDate      time.Time
	partyLocation  string
	vegGuests      int
	nonVegGuests   int
	items          []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateQuoteRequestCommand creates a command to submit a new quote request.
// Validates the acting identity, the quote id, a non-empty party location,
// and that every line item references a menu item with a positive quantity.
// The past-date rule and menu availability are checked by the handler.
func NewCreateQuoteRequestCommand(
	acting actor.Actor,
	quoteRequestID kernel.UUID,
	partyDate time.Time,
	partyLocation string,
	vegGuests, nonVegGuests int,
	items []LineItemInput,
) (CreateQuoteRequestCommand, error) {
	cmd := CreateQuoteRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(acting),
		cmd.setQuoteRequestID(quoteRequestID),
		cmd.setPartyLocation(partyLocation),
		cmd.setItems(items),
	); err != nil {
		return CreateQuoteRequestCommand{}, err
	}

	cmd.partyDate = partyDate
	cmd.vegGuests = vegGuests
	cmd.nonVegGuests = nonVegGuests
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteRequestCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateQuoteRequestCommand) Actor() actor.Actor {
	return c.actor
}

// QuoteRequestID returns the identifier for the new quote request.
func (c CreateQuoteRequestCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}

// PartyDate returns the requested party date.
func (c CreateQuoteRequestCommand) PartyDate() time.Time {
	return c.partyDate
}

// PartyLocation returns the requested party location.
func (c CreateQuoteRequestCommand) PartyLocation() string {
	return c.partyLocation
}

// VegGuests returns the vegetarian guest count.
func (c CreateQuoteRequestCommand) VegGuests() int {
	return c.vegGuests
}

// NonVegGuests returns the non-vegetarian guest count.
func (c CreateQuoteRequestCommand) NonVegGuests() int {
	return c.nonVegGuests
}

// Items returns the requested line items.
func (c CreateQuoteRequestCommand) Items() []LineItemInput {
	items := make([]LineItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateQuoteRequestCommand) setActor(acting actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}
	c.actor = acting
	return nil
}

func (c *CreateQuoteRequestCommand) setQuoteRequestID(quoteRequestID kernel.UUID) error {
	if err := quoteRequestID.Validate(); err != nil {
		return err
	}
	c.quoteRequestID = quoteRequestID
	return nil
}

func (c *CreateQuoteRequestCommand) setPartyLocation(partyLocation string) error {
	if partyLocation == "" {
		return errs.NewValueIsRequiredError("partyLocation")
	}
	c.partyLocation = partyLocation
	return nil
}

func (c *CreateQuoteRequestCommand) setItems(items []LineItemInput) error {
	if len(items) == 0 {
		return ErrLineItemInputsAreRequired
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}
	c.items = make([]LineItemInput, len(items))
	copy(c.items, items)
	return nil
}
