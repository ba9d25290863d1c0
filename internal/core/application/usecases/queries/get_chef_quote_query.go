package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetChefQuoteQueryIsNotConstructed = errors.New(
		"GetChefQuoteQuery must be created via NewGetChefQuoteQuery constructor",
	)
)

// GetChefQuoteQuery retrieves a quote request as seen by a bidding chef.
// A chef sees the party details, every line item, only their own bid per
// item, and after confirmation only the item orders they won.
//
// Example:
//
//	query, err := NewGetChefQuoteQuery(chef, quoteRequestID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get quote: %w", err)
//	}
type GetChefQuoteQuery struct {
	actor          actor.Actor
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetChefQuoteQuery creates a chef view query for the given quote request.
func NewGetChefQuoteQuery(
	requester actor.Actor,
	quoteRequestID kernel.UUID,
) (GetChefQuoteQuery, error) {
	if err := errors.Join(
		requester.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return GetChefQuoteQuery{}, err
	}

	return GetChefQuoteQuery{
		actor:          requester,
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetChefQuoteQuery) Actor() actor.Actor { return q.actor }

func (q GetChefQuoteQuery) QuoteRequestID() kernel.UUID { return q.quoteRequestID }

// Validate ensures the query was created through the constructor.
func (q GetChefQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetChefQuoteQueryIsNotConstructed)
}

// ChefBidView is the requesting chef's own bid on a line item.
type ChefBidView struct {
	ID             kernel.UUID
	UnitPriceCents int64
	Status         string
}

// ChefItemOrderView reports progress of an item order won by the chef.
type ChefItemOrderView struct {
	ID         kernel.UUID
	PriceCents int64
	Status     string
}

// ChefLineItemView is one requested dish together with the chef's own bid
// and, if the chef won the item, its confirmed order.
type ChefLineItemView struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	Quantity     int
	OwnBid       *ChefBidView
	Order        *ChefItemOrderView
}

// GetChefQuoteQueryResponse is the chef-facing quote view. Competitor bids
// are never included.
type GetChefQuoteQueryResponse struct {
	ID            kernel.UUID
	PartyDate     time.Time
	PartyLocation string
	VegGuests     int
	NonVegGuests  int
	Status        string
	IsConfirmed   bool
	LineItems     []ChefLineItemView
}
