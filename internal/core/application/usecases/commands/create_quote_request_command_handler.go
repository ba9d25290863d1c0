package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/notification"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"
)

// CreateQuoteRequestCommandHandler handles the business logic for quote creation.
// Only customers may create quotes. The party date must not be in the past,
// and every referenced menu item must be available at creation time; the
// availability is captured then, not re-checked later.
//
// The quote request and all its line items are persisted in one transaction:
// partial line-item sets can never exist.
type CreateQuoteRequestCommandHandler struct {
	uowFactory CreateQuoteUoWFactory
	notifier   Notifier
}

// NewCreateQuoteRequestCommandHandler creates a handler for quote creation.
// Requires a CreateQuoteUoWFactory for transactional persistence across the
// quote and menu repositories.
func NewCreateQuoteRequestCommandHandler(
	uowFactory CreateQuoteUoWFactory,
	notifier Notifier,
) CreateQuoteRequestCommandHandler {
	return CreateQuoteRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the quote creation command.
// Validation and authorization happen before any state is read; any failure
// leaves nothing persisted.
func (h CreateQuoteRequestCommandHandler) Handle(ctx context.Context, cmd CreateQuoteRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != actor.Customer {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "create quote request",
			fmt.Errorf("role is %s", cmd.Actor().Role()))
	}

	now := time.Now()
	details, err := quote.NewPartyDetails(
		cmd.PartyDate(), cmd.PartyLocation(), cmd.VegGuests(), cmd.NonVegGuests(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	lineItems := make([]*quote.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		menuItem, menuErr := menuRepo.Get(ctx, input.MenuItemID)
		if menuErr != nil {
			return menuErr
		}
		if !menuItem.IsAvailable() {
			return errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %s is not available", menuItem.ID()))
		}

		lineItem, itemErr := quote.NewLineItem(kernel.NewUUID(), menuItem.ID(), input.Quantity)
		if itemErr != nil {
			return itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	aggregate, err := quote.NewQuoteRequest(
		cmd.QuoteRequestID(), cmd.Actor().ID(), details, lineItems, now)
	if err != nil {
		return err
	}

	if err = uow.QuoteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventQuoteCreated)
	return nil
}
