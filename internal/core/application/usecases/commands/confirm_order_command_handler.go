package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the business logic for order confirmation.
// Only the owning customer may confirm, and only when every line item has
// exactly one approved bid. Materializing the item orders and flipping the
// confirmation flag happen under one transaction.
type ConfirmOrderCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory QuoteUoWFactory, notifier Notifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order confirmation command.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != actor.Customer {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "confirm order",
			fmt.Errorf("role is %s", cmd.Actor().Role()))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()
	aggregate, err := repo.Get(ctx, cmd.QuoteRequestID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.Actor().ID()) {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "confirm order",
			fmt.Errorf("quote request %s belongs to another customer", aggregate.ID()))
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventOrderConfirmed)
	return nil
}
