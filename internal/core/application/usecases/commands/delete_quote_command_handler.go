package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/pkg/errs"
)

// DeleteQuoteCommandHandler handles cascading deletion of a quote aggregate.
// Admin only. The repository removes the quote request, line items, chef
// bids, and item orders atomically.
type DeleteQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewDeleteQuoteCommandHandler creates a handler for cascading quote deletion.
func NewDeleteQuoteCommandHandler(uowFactory QuoteUoWFactory, notifier Notifier) DeleteQuoteCommandHandler {
	return DeleteQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cascading delete command.
func (h DeleteQuoteCommandHandler) Handle(ctx context.Context, cmd DeleteQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != actor.Admin {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "delete quote",
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

	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventQuoteDeleted)
	return nil
}
