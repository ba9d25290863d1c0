package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQuoteQueryHandler reads the customer-facing quote view from the
// database. Bids hidden from the customer are excluded from the response.
//
// Example:
//
//	handler := NewGetCustomerQuoteQueryHandler(db)
//	query, _ := NewGetCustomerQuoteQuery(customer, quoteRequestID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get quote view: %v", err)
//	    return err
//	}
type GetCustomerQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQuoteQueryHandler creates a handler for customer quote views.
func NewGetCustomerQuoteQueryHandler(db *gorm.DB) GetCustomerQuoteQueryHandler {
	return GetCustomerQuoteQueryHandler{db: db}
}

// Handle executes the query and assembles the nested quote view.
// Returns ObjectNotFoundError when the quote does not exist and
// NotAuthorizedError when the requester is not the owning customer.
func (h GetCustomerQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuoteQuery,
) (GetCustomerQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQuoteQueryResponse{}, err
	}

	resp, customerID, err := h.loadQuote(ctx, query.QuoteRequestID())
	if err != nil {
		return GetCustomerQuoteQueryResponse{}, err
	}

	requester := query.Actor()
	if requester.Role() != actor.Customer || !requester.ID().IsEqual(customerID) {
		return GetCustomerQuoteQueryResponse{}, errs.NewNotAuthorizedError(
			requester.ID().String(), "view quote "+resp.ID.String())
	}

	resp.LineItems, err = h.loadLineItems(ctx, resp.ID)
	if err != nil {
		return GetCustomerQuoteQueryResponse{}, err
	}

	return resp, nil
}

func (h GetCustomerQuoteQueryHandler) loadQuote(
	ctx context.Context,
	quoteRequestID kernel.UUID,
) (GetCustomerQuoteQueryResponse, kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			party_date,
			party_location,
			veg_guests,
			non_veg_guests,
			total_price_cents,
			status,
			is_confirmed,
			created_at
		FROM quote_requests
		WHERE id = ?
	`, quoteRequestID.Bytes()).Rows()
	if err != nil {
		return GetCustomerQuoteQueryResponse{}, kernel.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCustomerQuoteQueryResponse{}, kernel.UUID{}, err
		}
		return GetCustomerQuoteQueryResponse{}, kernel.UUID{},
			errs.NewObjectNotFoundError("quoteRequestID", quoteRequestID)
	}

	var resp GetCustomerQuoteQueryResponse
	var id, customerRaw uuid.UUID
	var totalPriceCents *int64
	var status int
	var partyDate, createdAt time.Time

	err = rows.Scan(
		&id,
		&customerRaw,
		&partyDate,
		&resp.PartyLocation,
		&resp.VegGuests,
		&resp.NonVegGuests,
		&totalPriceCents,
		&status,
		&resp.IsConfirmed,
		&createdAt,
	)
	if err != nil {
		return GetCustomerQuoteQueryResponse{}, kernel.UUID{}, err
	}

	quoteID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetCustomerQuoteQueryResponse{}, kernel.UUID{}, idErr
	}
	customerID, idErr := kernel.UUIDFromBytes(customerRaw[:])
	if idErr != nil {
		return GetCustomerQuoteQueryResponse{}, kernel.UUID{}, idErr
	}

	resp.ID = quoteID
	resp.PartyDate = partyDate
	resp.CreatedAt = createdAt
	resp.TotalPriceCents = totalPriceCents
	resp.Status = quote.QuoteStatus(status).String()

	return resp, customerID, nil
}

func (h GetCustomerQuoteQueryHandler) loadLineItems(
	ctx context.Context,
	quoteRequestID kernel.UUID,
) ([]CustomerLineItemView, error) {
	items := make([]CustomerLineItemView, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.menu_item_id,
			mi.name,
			li.quantity
		FROM line_items li
		JOIN menu_items mi ON mi.id = li.menu_item_id
		WHERE li.quote_request_id = ?
		ORDER BY li.id
	`, quoteRequestID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CustomerLineItemView
		var id, menuItemRaw uuid.UUID

		if err = rows.Scan(&id, &menuItemRaw, &item.MenuItemName, &item.Quantity); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemRaw[:]); err != nil {
			return nil, err
		}

		item.Bids = make([]CustomerBidView, 0)
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.loadBids(ctx, quoteRequestID, items, index); err != nil {
		return nil, err
	}
	if err = h.loadItemOrders(ctx, quoteRequestID, items, index); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetCustomerQuoteQueryHandler) loadBids(
	ctx context.Context,
	quoteRequestID kernel.UUID,
	items []CustomerLineItemView,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cb.id,
			cb.line_item_id,
			cb.chef_id,
			cb.unit_price_cents,
			cb.status
		FROM chef_bids cb
		JOIN line_items li ON li.id = cb.line_item_id
		WHERE li.quote_request_id = ? AND cb.visible_to_customer
		ORDER BY cb.id
	`, quoteRequestID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bid CustomerBidView
		var id, lineItemRaw, chefRaw uuid.UUID
		var status int

		if err = rows.Scan(&id, &lineItemRaw, &chefRaw, &bid.UnitPriceCents, &status); err != nil {
			return err
		}

		if bid.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		lineItemID, idErr := kernel.UUIDFromBytes(lineItemRaw[:])
		if idErr != nil {
			return idErr
		}
		if bid.ChefID, err = kernel.UUIDFromBytes(chefRaw[:]); err != nil {
			return err
		}
		bid.Status = quote.BidStatus(status).String()

		if i, ok := index[lineItemID]; ok {
			items[i].Bids = append(items[i].Bids, bid)
		}
	}

	return rows.Err()
}

func (h GetCustomerQuoteQueryHandler) loadItemOrders(
	ctx context.Context,
	quoteRequestID kernel.UUID,
	items []CustomerLineItemView,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			io.id,
			io.line_item_id,
			io.chef_id,
			io.price_cents,
			io.status
		FROM item_orders io
		JOIN line_items li ON li.id = io.line_item_id
		WHERE li.quote_request_id = ?
		ORDER BY io.id
	`, quoteRequestID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var order CustomerItemOrderView
		var id, lineItemRaw, chefRaw uuid.UUID
		var status int

		if err = rows.Scan(&id, &lineItemRaw, &chefRaw, &order.PriceCents, &status); err != nil {
			return err
		}

		if order.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		lineItemID, idErr := kernel.UUIDFromBytes(lineItemRaw[:])
		if idErr != nil {
			return idErr
		}
		if order.ChefID, err = kernel.UUIDFromBytes(chefRaw[:]); err != nil {
			return err
		}
		order.Status = quote.OrderStatus(status).String()

		if i, ok := index[lineItemID]; ok {
			view := order
			items[i].Order = &view
		}
	}

	return rows.Err()
}
