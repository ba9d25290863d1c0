package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"
)

// SubmitBidCommandHandler handles the business logic for bid submission.
// Only chefs may bid. The aggregate enforces that the quote is still
// pending and that the chef has no other open bid for the line item.
type SubmitBidCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewSubmitBidCommandHandler creates a handler for bid submission.
func NewSubmitBidCommandHandler(uowFactory QuoteUoWFactory, notifier Notifier) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the bid submission command.
func (h SubmitBidCommandHandler) Handle(ctx context.Context, cmd SubmitBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != actor.Chef {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "submit bid",
			fmt.Errorf("role is %s", cmd.Actor().Role()))
	}

	bid, err := quote.NewChefBid(cmd.BidID(), cmd.Actor().ID(), cmd.UnitPrice(), cmd.VisibleToCustomer())
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

	repo := uow.QuoteRepository()
	aggregate, err := repo.Get(ctx, cmd.QuoteRequestID())
	if err != nil {
		return err
	}

	if err = aggregate.SubmitBid(cmd.LineItemID(), bid); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventBidSubmitted)
	return nil
}
