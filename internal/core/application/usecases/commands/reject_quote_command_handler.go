package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/pkg/errs"
)

// RejectQuoteCommandHandler handles the business logic for quote rejection.
// Admins and chefs may reject a pending quote; the transition is terminal.
type RejectQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewRejectQuoteCommandHandler creates a handler for quote rejection.
func NewRejectQuoteCommandHandler(uowFactory QuoteUoWFactory, notifier Notifier) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the quote rejection command.
func (h RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	role := cmd.Actor().Role()
	if role != actor.Admin && role != actor.Chef {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "reject quote",
			fmt.Errorf("role is %s", role))
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

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventQuoteRejected)
	return nil
}
