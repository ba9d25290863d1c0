// Package http exposes the catering lifecycle over a JSON REST API.
// Every mutating endpoint resolves the authenticated actor from the bearer
// token, builds a command, and delegates to the application layer; the
// handlers never touch the domain model directly.
package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createQuoteHandler      commands.CreateQuoteRequestCommandHandler
	submitBidHandler        commands.SubmitBidCommandHandler
	selectBidHandler        commands.SelectBidCommandHandler
	rejectQuoteHandler      commands.RejectQuoteCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	advanceItemOrderHandler commands.AdvanceItemOrderCommandHandler
	deleteQuoteHandler      commands.DeleteQuoteCommandHandler

	// Query handlers
	getCustomerQuoteHandler  queries.GetCustomerQuoteQueryHandler
	getChefQuoteHandler      queries.GetChefQuoteQueryHandler
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createQuoteHandler commands.CreateQuoteRequestCommandHandler,
	submitBidHandler commands.SubmitBidCommandHandler,
	selectBidHandler commands.SelectBidCommandHandler,
	rejectQuoteHandler commands.RejectQuoteCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	advanceItemOrderHandler commands.AdvanceItemOrderCommandHandler,
	deleteQuoteHandler commands.DeleteQuoteCommandHandler,
	getCustomerQuoteHandler queries.GetCustomerQuoteQueryHandler,
	getChefQuoteHandler queries.GetChefQuoteQueryHandler,
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createQuoteHandler:       createQuoteHandler,
		submitBidHandler:         submitBidHandler,
		selectBidHandler:         selectBidHandler,
		rejectQuoteHandler:       rejectQuoteHandler,
		confirmOrderHandler:      confirmOrderHandler,
		advanceItemOrderHandler:  advanceItemOrderHandler,
		deleteQuoteHandler:       deleteQuoteHandler,
		getCustomerQuoteHandler:  getCustomerQuoteHandler,
		getChefQuoteHandler:      getChefQuoteHandler,
		getDeliveryOrdersHandler: getDeliveryOrdersHandler,
		getMenuHandler:           getMenuHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// except the health check sits behind the bearer token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.GET("/menu", s.GetMenu)
	api.POST("/quotes", s.CreateQuote)
	api.GET("/quotes/:quoteId", s.GetQuote)
	api.DELETE("/quotes/:quoteId", s.DeleteQuote)
	api.POST("/quotes/:quoteId/reject", s.RejectQuote)
	api.POST("/quotes/:quoteId/confirm", s.ConfirmOrder)
	api.POST("/quotes/:quoteId/items/:itemId/bids", s.SubmitBid)
	api.POST("/quotes/:quoteId/items/:itemId/bids/:bidId/select", s.SelectBid)
	api.POST("/quotes/:quoteId/items/:itemId/advance", s.AdvanceItemOrder)
	api.GET("/delivery/orders", s.GetDeliveryOrders)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - retrieves the available menu catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:           item.ID.String(),
			Name:         item.Name,
			DietaryClass: item.DietaryClass,
			CourseClass:  item.CourseClass,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateQuote handles POST /api/v1/quotes - submits a new quote request.
func (s *Server) CreateQuote(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var body CreateQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.LineItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, commands.LineItemInput{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	quoteRequestID := kernel.NewUUID()
	cmd, err := commands.NewCreateQuoteRequestCommand(
		requester,
		quoteRequestID,
		body.PartyDate,
		body.PartyLocation,
		body.VegGuests,
		body.NonVegGuests,
		items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.createQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateQuoteResponse{ID: quoteRequestID.String()})
}

// GetQuote handles GET /api/v1/quotes/:quoteId - retrieves the quote view
// for the requesting role. Customers get their full quote with visible bids;
// chefs get the line items with only their own bids and won orders.
func (s *Server) GetQuote(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}

	switch requester.Role() {
	case actor.Chef:
		query, queryErr := queries.NewGetChefQuoteQuery(requester, quoteRequestID)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		view, handleErr := s.getChefQuoteHandler.Handle(ctx.Request().Context(), query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.JSON(http.StatusOK, chefQuoteFromQuery(view))
	default:
		query, queryErr := queries.NewGetCustomerQuoteQuery(requester, quoteRequestID)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		view, handleErr := s.getCustomerQuoteHandler.Handle(ctx.Request().Context(), query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.JSON(http.StatusOK, customerQuoteFromQuery(view))
	}
}

// SubmitBid handles POST /api/v1/quotes/:quoteId/items/:itemId/bids -
// submits a chef bid on a line item.
func (s *Server) SubmitBid(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}
	lineItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body SubmitBidRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	unitPrice, err := kernel.NewPrice(body.UnitPriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	bidID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(
		requester,
		quoteRequestID,
		lineItemID,
		bidID,
		unitPrice,
		body.VisibleToCustomer,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.submitBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, SubmitBidResponse{ID: bidID.String()})
}

// SelectBid handles POST /api/v1/quotes/:quoteId/items/:itemId/bids/:bidId/select -
// marks a bid as the winner for its line item.
func (s *Server) SelectBid(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}
	lineItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeError(ctx, err)
	}
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSelectBidCommand(requester, quoteRequestID, lineItemID, bidID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.selectBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectQuote handles POST /api/v1/quotes/:quoteId/reject - closes the
// quote to further bidding and selection.
func (s *Server) RejectQuote(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectQuoteCommand(requester, quoteRequestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.rejectQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/quotes/:quoteId/confirm - freezes the
// approved quote and materializes item orders from the winning bids.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(requester, quoteRequestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// getOrderActions maps wire action names to their lifecycle actions.
func getOrderActions() map[string]commands.OrderAction {
	return map[string]commands.OrderAction{
		"start_processing": commands.ActionStartProcessing,
		"mark_ready":       commands.ActionMarkReady,
		"start_delivery":   commands.ActionStartDelivery,
		"mark_delivered":   commands.ActionMarkDelivered,
		"mark_received":    commands.ActionMarkReceived,
	}
}

// AdvanceItemOrder handles POST /api/v1/quotes/:quoteId/items/:itemId/advance -
// moves an item order one step along the preparation-to-receipt progression.
func (s *Server) AdvanceItemOrder(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}
	lineItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body AdvanceItemOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	action, ok := getOrderActions()[body.Action]
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown action: " + body.Action,
		})
	}

	cmd, err := commands.NewAdvanceItemOrderCommand(requester, quoteRequestID, lineItemID, action)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.advanceItemOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteQuote handles DELETE /api/v1/quotes/:quoteId - removes a quote
// request and everything hanging off it.
func (s *Server) DeleteQuote(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("quoteId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteQuoteCommand(requester, quoteRequestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.deleteQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryOrders handles GET /api/v1/delivery/orders - retrieves the
// delivery worklist of item orders at the ready stage or later.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetDeliveryOrdersQuery(requester)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDeliveryOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryOrder, len(orders))
	for i, order := range orders {
		response[i] = DeliveryOrder{
			ID:             order.ID.String(),
			QuoteRequestID: order.QuoteRequestID.String(),
			MenuItemName:   order.MenuItemName,
			Quantity:       order.Quantity,
			PartyDate:      order.PartyDate,
			PartyLocation:  order.PartyLocation,
			Status:         order.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
