package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/pkg/errs"
)

// SelectBidCommandHandler handles the business logic for bid selection.
// Only the customer owning the quote may select bids. The aggregate
// executes the reset-then-approve sequence, and the repository persists it
// under one transaction with a version check, so a concurrent bid
// submission or selection can never produce two approved bids.
type SelectBidCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewSelectBidCommandHandler creates a handler for bid selection.
func NewSelectBidCommandHandler(uowFactory QuoteUoWFactory, notifier Notifier) SelectBidCommandHandler {
	return SelectBidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the bid selection command.
func (h SelectBidCommandHandler) Handle(ctx context.Context, cmd SelectBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != actor.Customer {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "select bid",
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
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), "select bid",
			fmt.Errorf("quote request %s belongs to another customer", aggregate.ID()))
	}

	if err = aggregate.SelectBid(cmd.LineItemID(), cmd.BidID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventBidSelected)
	return nil
}
