package http

import (
	"time"

	"catering/internal/core/application/usecases/queries"
)

// Error is the uniform JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateQuoteRequest is the request body for creating a quote request.
type CreateQuoteRequest struct {
	PartyDate     time.Time             `json:"partyDate"`
	PartyLocation string                `json:"partyLocation"`
	VegGuests     int                   `json:"vegGuests"`
	NonVegGuests  int                   `json:"nonVegGuests"`
	Items         []CreateQuoteLineItem `json:"items"`
}

// CreateQuoteLineItem is one requested dish in a quote creation request.
type CreateQuoteLineItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CreateQuoteResponse returns the identifier of a newly created quote request.
type CreateQuoteResponse struct {
	ID string `json:"id"`
}

// SubmitBidRequest is the request body for a chef bid on a line item.
type SubmitBidRequest struct {
	UnitPriceCents    int64 `json:"unitPriceCents"`
	VisibleToCustomer bool  `json:"visibleToCustomer"`
}

// SubmitBidResponse returns the identifier of a newly submitted bid.
type SubmitBidResponse struct {
	ID string `json:"id"`
}

// AdvanceItemOrderRequest names the lifecycle step to apply to an item order.
type AdvanceItemOrderRequest struct {
	Action string `json:"action"`
}

// MenuItem is one orderable dish in the menu response.
type MenuItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DietaryClass string `json:"dietaryClass"`
	CourseClass  string `json:"courseClass"`
}

// ChefBid is a bid as rendered in the customer quote view.
type ChefBid struct {
	ID             string `json:"id"`
	ChefID         string `json:"chefId"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Status         string `json:"status"`
}

// ItemOrder reports per-item order progress in quote views.
type ItemOrder struct {
	ID         string `json:"id"`
	ChefID     string `json:"chefId,omitempty"`
	PriceCents int64  `json:"priceCents"`
	Status     string `json:"status"`
}

// CustomerLineItem is one dish in the customer quote view.
type CustomerLineItem struct {
	ID           string     `json:"id"`
	MenuItemID   string     `json:"menuItemId"`
	MenuItemName string     `json:"menuItemName"`
	Quantity     int        `json:"quantity"`
	Bids         []ChefBid  `json:"bids"`
	Order        *ItemOrder `json:"order,omitempty"`
}

// CustomerQuote is the customer-facing quote view.
type CustomerQuote struct {
	ID              string             `json:"id"`
	PartyDate       time.Time          `json:"partyDate"`
	PartyLocation   string             `json:"partyLocation"`
	VegGuests       int                `json:"vegGuests"`
	NonVegGuests    int                `json:"nonVegGuests"`
	Status          string             `json:"status"`
	IsConfirmed     bool               `json:"isConfirmed"`
	TotalPriceCents *int64             `json:"totalPriceCents,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	LineItems       []CustomerLineItem `json:"lineItems"`
}

// OwnBid is the requesting chef's bid in the chef quote view.
type OwnBid struct {
	ID             string `json:"id"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Status         string `json:"status"`
}

// ChefLineItem is one dish in the chef quote view.
type ChefLineItem struct {
	ID           string     `json:"id"`
	MenuItemID   string     `json:"menuItemId"`
	MenuItemName string     `json:"menuItemName"`
	Quantity     int        `json:"quantity"`
	OwnBid       *OwnBid    `json:"ownBid,omitempty"`
	Order        *ItemOrder `json:"order,omitempty"`
}

// ChefQuote is the chef-facing quote view. Competitor bids are excluded.
type ChefQuote struct {
	ID            string         `json:"id"`
	PartyDate     time.Time      `json:"partyDate"`
	PartyLocation string         `json:"partyLocation"`
	VegGuests     int            `json:"vegGuests"`
	NonVegGuests  int            `json:"nonVegGuests"`
	Status        string         `json:"status"`
	IsConfirmed   bool           `json:"isConfirmed"`
	LineItems     []ChefLineItem `json:"lineItems"`
}

// DeliveryOrder is one deliverable item order in the delivery worklist.
type DeliveryOrder struct {
	ID             string    `json:"id"`
	QuoteRequestID string    `json:"quoteRequestId"`
	MenuItemName   string    `json:"menuItemName"`
	Quantity       int       `json:"quantity"`
	PartyDate      time.Time `json:"partyDate"`
	PartyLocation  string    `json:"partyLocation"`
	Status         string    `json:"status"`
}

func customerQuoteFromQuery(view queries.GetCustomerQuoteQueryResponse) CustomerQuote {
	lineItems := make([]CustomerLineItem, 0, len(view.LineItems))
	for _, item := range view.LineItems {
		bids := make([]ChefBid, 0, len(item.Bids))
		for _, bid := range item.Bids {
			bids = append(bids, ChefBid{
				ID:             bid.ID.String(),
				ChefID:         bid.ChefID.String(),
				UnitPriceCents: bid.UnitPriceCents,
				Status:         bid.Status,
			})
		}

		var order *ItemOrder
		if item.Order != nil {
			order = &ItemOrder{
				ID:         item.Order.ID.String(),
				ChefID:     item.Order.ChefID.String(),
				PriceCents: item.Order.PriceCents,
				Status:     item.Order.Status,
			}
		}

		lineItems = append(lineItems, CustomerLineItem{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			Bids:         bids,
			Order:        order,
		})
	}

	return CustomerQuote{
		ID:              view.ID.String(),
		PartyDate:       view.PartyDate,
		PartyLocation:   view.PartyLocation,
		VegGuests:       view.VegGuests,
		NonVegGuests:    view.NonVegGuests,
		Status:          view.Status,
		IsConfirmed:     view.IsConfirmed,
		TotalPriceCents: view.TotalPriceCents,
		CreatedAt:       view.CreatedAt,
		LineItems:       lineItems,
	}
}

func chefQuoteFromQuery(view queries.GetChefQuoteQueryResponse) ChefQuote {
	lineItems := make([]ChefLineItem, 0, len(view.LineItems))
	for _, item := range view.LineItems {
		var ownBid *OwnBid
		if item.OwnBid != nil {
			ownBid = &OwnBid{
				ID:             item.OwnBid.ID.String(),
				UnitPriceCents: item.OwnBid.UnitPriceCents,
				Status:         item.OwnBid.Status,
			}
		}

		var order *ItemOrder
		if item.Order != nil {
			order = &ItemOrder{
				ID:         item.Order.ID.String(),
				PriceCents: item.Order.PriceCents,
				Status:     item.Order.Status,
			}
		}

		lineItems = append(lineItems, ChefLineItem{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			OwnBid:       ownBid,
			Order:        order,
		})
	}

	return ChefQuote{
		ID:            view.ID.String(),
		PartyDate:     view.PartyDate,
		PartyLocation: view.PartyLocation,
		VegGuests:     view.VegGuests,
		NonVegGuests:  view.NonVegGuests,
		Status:        view.Status,
		IsConfirmed:   view.IsConfirmed,
		LineItems:     lineItems,
	}
}
