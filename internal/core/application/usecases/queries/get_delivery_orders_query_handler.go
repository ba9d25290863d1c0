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

// GetDeliveryOrdersQueryHandler retrieves the delivery worklist from the
// database. Only item orders at the ready stage or later are returned, so
// couriers never see dishes that are still being prepared.
//
// Example:
//
//	handler := NewGetDeliveryOrdersQueryHandler(db)
//	query, _ := NewGetDeliveryOrdersQuery(courier)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get delivery orders: %v", err)
//	    return err
//	}
type GetDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersQueryHandler creates a handler for delivery worklist queries.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliverable item orders.
// Results are sorted by party date so the most urgent drops come first.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]GetDeliveryOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester := query.Actor()
	if requester.Role() != actor.Delivery && requester.Role() != actor.Admin {
		return nil, errs.NewNotAuthorizedError(requester.ID().String(), "view delivery orders")
	}

	orders := make([]GetDeliveryOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			io.id,
			qr.id,
			mi.name,
			li.quantity,
			qr.party_date,
			qr.party_location,
			io.status
		FROM item_orders io
		JOIN line_items li ON li.id = io.line_item_id
		JOIN quote_requests qr ON qr.id = li.quote_request_id
		JOIN menu_items mi ON mi.id = li.menu_item_id
		WHERE io.status >= ?
		ORDER BY qr.party_date, io.id
	`, quote.ReadyToDeliver).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetDeliveryOrdersQueryResponse
		var id, quoteRaw uuid.UUID
		var status int
		var partyDate time.Time

		err = rows.Scan(
			&id,
			&quoteRaw,
			&orderResp.MenuItemName,
			&orderResp.Quantity,
			&partyDate,
			&orderResp.PartyLocation,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.QuoteRequestID, err = kernel.UUIDFromBytes(quoteRaw[:]); err != nil {
			return nil, err
		}
		orderResp.PartyDate = partyDate
		orderResp.Status = quote.OrderStatus(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
