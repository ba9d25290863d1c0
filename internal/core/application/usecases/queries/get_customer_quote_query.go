package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetCustomerQuoteQueryIsNotConstructed = errors.New(
		"GetCustomerQuoteQuery must be created via NewGetCustomerQuoteQuery constructor",
	)
)

// GetCustomerQuoteQuery retrieves a quote request as seen by the owning customer.
// The customer view includes every line item with its bids (hidden bids excluded),
// the running total price and, once the order is confirmed, per-item progress.
//
// Example:
//
//	query, err := NewGetCustomerQuoteQuery(customer, quoteRequestID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get quote: %w", err)
//	}
//
//	fmt.Printf("Quote %s: %s\n", view.ID, view.Status)
type GetCustomerQuoteQuery struct {
	actor          actor.Actor
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuoteQuery creates a customer view query for the given quote request.
// The actor must be the customer that owns the quote; ownership is enforced by the handler.
func NewGetCustomerQuoteQuery(
	requester actor.Actor,
	quoteRequestID kernel.UUID,
) (GetCustomerQuoteQuery, error) {
	if err := errors.Join(
		requester.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return GetCustomerQuoteQuery{}, err
	}

	return GetCustomerQuoteQuery{
		actor:          requester,
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerQuoteQuery) Actor() actor.Actor { return q.actor }

func (q GetCustomerQuoteQuery) QuoteRequestID() kernel.UUID { return q.quoteRequestID }

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQuoteQueryIsNotConstructed)
}

// CustomerBidView is a single chef bid as shown to the customer.
type CustomerBidView struct {
	ID             kernel.UUID
	ChefID         kernel.UUID
	UnitPriceCents int64
	Status         string
}

// CustomerItemOrderView reports confirmed-order progress for one line item.
type CustomerItemOrderView struct {
	ID         kernel.UUID
	ChefID     kernel.UUID
	PriceCents int64
	Status     string
}

// CustomerLineItemView is one requested dish with its bids and, after
// confirmation, the materialized order.
type CustomerLineItemView struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	Quantity     int
	Bids         []CustomerBidView
	Order        *CustomerItemOrderView
}

// GetCustomerQuoteQueryResponse is the full customer-facing quote view.
type GetCustomerQuoteQueryResponse struct {
	ID              kernel.UUID
	PartyDate       time.Time
	PartyLocation   string
	VegGuests       int
	NonVegGuests    int
	Status          string
	IsConfirmed     bool
	TotalPriceCents *int64
	CreatedAt       time.Time
	LineItems       []CustomerLineItemView
}
