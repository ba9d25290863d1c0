// Package quoterepo provides data transfer objects and mapping functions for
// quote request persistence. The quote request aggregate spans four tables,
// quote_requests, line_items, chef_bids and item_orders, and is always loaded
// and stored as one unit.
package quoterepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteRequestDTO represents the database structure for persisting quote
// request aggregates. The version column carries the optimistic concurrency
// token checked on every update.
type QuoteRequestDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	PartyDate       time.Time     `gorm:"not null"`
	PartyLocation   string        `gorm:"type:varchar(255);not null"`
	VegGuests       int           `gorm:"type:int;not null"`
	NonVegGuests    int           `gorm:"type:int;not null"`
	TotalPriceCents *int64        `gorm:"type:bigint"`
	Status          int           `gorm:"type:int;not null;index"`
	IsConfirmed     bool          `gorm:"not null"`
	Version         int           `gorm:"type:int;not null"`
	CreatedAt       time.Time     `gorm:"not null"`
	LineItems       []LineItemDTO `gorm:"foreignKey:QuoteRequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for quote request entities.
func (QuoteRequestDTO) TableName() string {
	return "quote_requests"
}

// LineItemDTO represents one requested dish within a quote request.
// Line items are immutable after creation; only their bid pool and
// materialized order change over the lifecycle.
type LineItemDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	QuoteRequestID uuid.UUID     `gorm:"type:uuid;not null;index"`
	MenuItemID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Quantity       int           `gorm:"type:int;not null"`
	Bids           []ChefBidDTO  `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
	ItemOrder      *ItemOrderDTO `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// ChefBidDTO represents a chef's competing offer on a line item.
type ChefBidDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ChefID            uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitPriceCents    int64     `gorm:"type:bigint;not null"`
	Status            int       `gorm:"type:int;not null"`
	VisibleToCustomer bool      `gorm:"not null"`
}

// TableName specifies the database table name for chef bid entities.
func (ChefBidDTO) TableName() string {
	return "chef_bids"
}

// ItemOrderDTO represents the confirmed order materialized from a winning
// bid. At most one exists per line item.
type ItemOrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ChefBidID  uuid.UUID `gorm:"type:uuid;not null"`
	ChefID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PriceCents int64     `gorm:"type:bigint;not null"`
	Status     int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for item order entities.
func (ItemOrderDTO) TableName() string {
	return "item_orders"
}

// fromDomain converts a quote request domain aggregate to its database
// representation, including the full line item, bid and order tree.
func fromDomain(aggregate *quote.QuoteRequest) QuoteRequestDTO {
	quoteID := aggregate.ID().Bytes()

	var totalPriceCents *int64
	if price := aggregate.TotalPrice(); price != nil {
		cents := price.Cents()
		totalPriceCents = &cents
	}

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, lineItemFromDomain(quoteID, item))
	}

	return QuoteRequestDTO{
		ID:              quoteID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		PartyDate:       aggregate.PartyDate(),
		PartyLocation:   aggregate.PartyLocation(),
		VegGuests:       aggregate.VegGuests(),
		NonVegGuests:    aggregate.NonVegGuests(),
		TotalPriceCents: totalPriceCents,
		Status:          int(aggregate.Status()),
		IsConfirmed:     aggregate.IsConfirmed(),
		Version:         aggregate.Version(),
		CreatedAt:       aggregate.CreatedAt(),
		LineItems:       lineItems,
	}
}

func lineItemFromDomain(quoteID uuid.UUID, item *quote.LineItem) LineItemDTO {
	itemID := item.ID().Bytes()

	bids := make([]ChefBidDTO, 0, len(item.Bids()))
	for _, bid := range item.Bids() {
		bids = append(bids, ChefBidDTO{
			ID:                bid.ID().Bytes(),
			LineItemID:        itemID,
			ChefID:            bid.ChefID().Bytes(),
			UnitPriceCents:    bid.UnitPrice().Cents(),
			Status:            int(bid.Status()),
			VisibleToCustomer: bid.IsVisibleToCustomer(),
		})
	}

	var itemOrder *ItemOrderDTO
	if order := item.ItemOrder(); order != nil {
		itemOrder = &ItemOrderDTO{
			ID:         order.ID().Bytes(),
			LineItemID: itemID,
			ChefBidID:  order.ChefBidID().Bytes(),
			ChefID:     order.ChefID().Bytes(),
			PriceCents: order.Price().Cents(),
			Status:     int(order.Status()),
		}
	}

	return LineItemDTO{
		ID:             itemID,
		QuoteRequestID: quoteID,
		MenuItemID:     item.MenuItemID().Bytes(),
		Quantity:       item.Quantity(),
		Bids:           bids,
		ItemOrder:      itemOrder,
	}
}

// toDomain converts a database DTO to a quote request domain aggregate.
// Reconstructs the complete tree using the Restore factories.
func toDomain(dto QuoteRequestDTO) (*quote.QuoteRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var totalPrice *kernel.Price
	if dto.TotalPriceCents != nil {
		price, priceErr := kernel.NewPrice(*dto.TotalPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		totalPrice = &price
	}

	lineItems := make([]*quote.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return quote.RestoreQuoteRequest(
		id, customerID,
		dto.PartyDate,
		dto.PartyLocation,
		dto.VegGuests, dto.NonVegGuests,
		totalPrice,
		quote.QuoteStatus(dto.Status),
		dto.IsConfirmed,
		dto.Version,
		dto.CreatedAt,
		lineItems,
	)
}

func lineItemToDomain(dto LineItemDTO) (*quote.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	bids := make([]*quote.ChefBid, 0, len(dto.Bids))
	for _, bidDto := range dto.Bids {
		bid, bidErr := chefBidToDomain(bidDto)
		if bidErr != nil {
			return nil, bidErr
		}
		bids = append(bids, bid)
	}

	var itemOrder *quote.ItemOrder
	if dto.ItemOrder != nil {
		itemOrder, err = itemOrderToDomain(*dto.ItemOrder)
		if err != nil {
			return nil, err
		}
	}

	return quote.RestoreLineItem(id, menuItemID, dto.Quantity, bids, itemOrder)
}

func chefBidToDomain(dto ChefBidDTO) (*quote.ChefBid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	chefID, err := kernel.UUIDFromBytes(dto.ChefID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewPrice(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return quote.RestoreChefBid(id, chefID, unitPrice, quote.BidStatus(dto.Status), dto.VisibleToCustomer)
}

func itemOrderToDomain(dto ItemOrderDTO) (*quote.ItemOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return nil, err
	}
	chefBidID, err := kernel.UUIDFromBytes(dto.ChefBidID[:])
	if err != nil {
		return nil, err
	}
	chefID, err := kernel.UUIDFromBytes(dto.ChefID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return quote.RestoreItemOrder(id, lineItemID, chefBidID, chefID, price, quote.OrderStatus(dto.Status))
}
