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

// GetChefQuoteQueryHandler reads the chef-facing quote view from the
// database, restricted to the requesting chef's own bids and orders.
type GetChefQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetChefQuoteQueryHandler creates a handler for chef quote views.
func NewGetChefQuoteQueryHandler(db *gorm.DB) GetChefQuoteQueryHandler {
	return GetChefQuoteQueryHandler{db: db}
}

// Handle executes the query and assembles the chef's view of the quote.
// Returns ObjectNotFoundError when the quote does not exist and
// NotAuthorizedError when the requester is not a chef.
func (h GetChefQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetChefQuoteQuery,
) (GetChefQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetChefQuoteQueryResponse{}, err
	}

	requester := query.Actor()
	if requester.Role() != actor.Chef {
		return GetChefQuoteQueryResponse{}, errs.NewNotAuthorizedError(
			requester.ID().String(), "view quote "+query.QuoteRequestID().String())
	}

	resp, err := h.loadQuote(ctx, query.QuoteRequestID())
	if err != nil {
		return GetChefQuoteQueryResponse{}, err
	}

	resp.LineItems, err = h.loadLineItems(ctx, resp.ID, requester.ID())
	if err != nil {
		return GetChefQuoteQueryResponse{}, err
	}

	return resp, nil
}

func (h GetChefQuoteQueryHandler) loadQuote(
	ctx context.Context,
	quoteRequestID kernel.UUID,
) (GetChefQuoteQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			party_date,
			party_location,
			veg_guests,
			non_veg_guests,
			status,
			is_confirmed
		FROM quote_requests
		WHERE id = ?
	`, quoteRequestID.Bytes()).Rows()
	if err != nil {
		return GetChefQuoteQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetChefQuoteQueryResponse{}, err
		}
		return GetChefQuoteQueryResponse{},
			errs.NewObjectNotFoundError("quoteRequestID", quoteRequestID)
	}

	var resp GetChefQuoteQueryResponse
	var id uuid.UUID
	var status int
	var partyDate time.Time

	err = rows.Scan(
		&id,
		&partyDate,
		&resp.PartyLocation,
		&resp.VegGuests,
		&resp.NonVegGuests,
		&status,
		&resp.IsConfirmed,
	)
	if err != nil {
		return GetChefQuoteQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetChefQuoteQueryResponse{}, err
	}
	resp.PartyDate = partyDate
	resp.Status = quote.QuoteStatus(status).String()

	return resp, nil
}

func (h GetChefQuoteQueryHandler) loadLineItems(
	ctx context.Context,
	quoteRequestID kernel.UUID,
	chefID kernel.UUID,
) ([]ChefLineItemView, error) {
	items := make([]ChefLineItemView, 0)
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
		var item ChefLineItemView
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

		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.loadOwnBids(ctx, quoteRequestID, chefID, items, index); err != nil {
		return nil, err
	}
	if err = h.loadOwnItemOrders(ctx, quoteRequestID, chefID, items, index); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetChefQuoteQueryHandler) loadOwnBids(
	ctx context.Context,
	quoteRequestID kernel.UUID,
	chefID kernel.UUID,
	items []ChefLineItemView,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cb.id,
			cb.line_item_id,
			cb.unit_price_cents,
			cb.status
		FROM chef_bids cb
		JOIN line_items li ON li.id = cb.line_item_id
		WHERE li.quote_request_id = ? AND cb.chef_id = ?
		ORDER BY cb.id
	`, quoteRequestID.Bytes(), chefID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bid ChefBidView
		var id, lineItemRaw uuid.UUID
		var status int

		if err = rows.Scan(&id, &lineItemRaw, &bid.UnitPriceCents, &status); err != nil {
			return err
		}

		if bid.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		lineItemID, idErr := kernel.UUIDFromBytes(lineItemRaw[:])
		if idErr != nil {
			return idErr
		}
		bid.Status = quote.BidStatus(status).String()

		if i, ok := index[lineItemID]; ok {
			view := bid
			items[i].OwnBid = &view
		}
	}

	return rows.Err()
}

func (h GetChefQuoteQueryHandler) loadOwnItemOrders(
	ctx context.Context,
	quoteRequestID kernel.UUID,
	chefID kernel.UUID,
	items []ChefLineItemView,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			io.id,
			io.line_item_id,
			io.price_cents,
			io.status
		FROM item_orders io
		JOIN line_items li ON li.id = io.line_item_id
		WHERE li.quote_request_id = ? AND io.chef_id = ?
		ORDER BY io.id
	`, quoteRequestID.Bytes(), chefID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var order ChefItemOrderView
		var id, lineItemRaw uuid.UUID
		var status int

		if err = rows.Scan(&id, &lineItemRaw, &order.PriceCents, &status); err != nil {
			return err
		}

		if order.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		lineItemID, idErr := kernel.UUIDFromBytes(lineItemRaw[:])
		if idErr != nil {
			return idErr
		}
		order.Status = quote.OrderStatus(status).String()

		if i, ok := index[lineItemID]; ok {
			view := order
			items[i].Order = &view
		}
	}

	return rows.Err()
}
