package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/notification"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"
)

// AdvanceItemOrderCommandHandler handles every per-item lifecycle step
// after confirmation. It authorizes the actor against the transition
// table (role plus ownership), lets the aggregate validate the exact
// from-state, and persists the step atomically.
//
// Ownership rules:
//   - chef actions require the acting chef to be the one assigned to the
//     item order
//   - the customer action requires the acting customer to own the quote
//   - delivery actions have no ownership constraint
type AdvanceItemOrderCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   Notifier
}

// NewAdvanceItemOrderCommandHandler creates a handler for item order progression.
func NewAdvanceItemOrderCommandHandler(
	uowFactory QuoteUoWFactory,
	notifier Notifier,
) AdvanceItemOrderCommandHandler {
	return AdvanceItemOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one item order progression step.
func (h AdvanceItemOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceItemOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != cmd.Action().RequiredRole() {
		return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), cmd.Action().String(),
			fmt.Errorf("role is %s, required role is %s", cmd.Actor().Role(), cmd.Action().RequiredRole()))
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

	if err = h.authorizeOwnership(cmd, aggregate); err != nil {
		return err
	}

	if err = h.advance(cmd, aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, cmd.Actor().ID(), aggregate.ID(), notification.EventOrderAdvanced)
	return nil
}

// authorizeOwnership enforces the ownership half of the transition table.
func (h AdvanceItemOrderCommandHandler) authorizeOwnership(
	cmd AdvanceItemOrderCommand,
	aggregate *quote.QuoteRequest,
) error {
	switch cmd.Action().RequiredRole() {
	case actor.Chef:
		lineItem, err := aggregate.LineItemByID(cmd.LineItemID())
		if err != nil {
			return err
		}
		order := lineItem.ItemOrder()
		if order == nil {
			return errs.NewObjectNotFoundError("itemOrder", cmd.LineItemID().String())
		}
		if !order.ChefID().IsEqual(cmd.Actor().ID()) {
			return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), cmd.Action().String(),
				fmt.Errorf("item order is assigned to another chef"))
		}
	case actor.Customer:
		if !aggregate.CustomerID().IsEqual(cmd.Actor().ID()) {
			return errs.NewNotAuthorizedErrorWithCause(cmd.Actor().ID().String(), cmd.Action().String(),
				fmt.Errorf("quote request %s belongs to another customer", aggregate.ID()))
		}
	default:
		// delivery actions carry no ownership constraint
	}
	return nil
}

// advance invokes the aggregate transition matching the action.
func (h AdvanceItemOrderCommandHandler) advance(
	cmd AdvanceItemOrderCommand,
	aggregate *quote.QuoteRequest,
) error {
	switch cmd.Action() {
	case ActionStartProcessing:
		return aggregate.StartProcessing(cmd.LineItemID())
	case ActionMarkReady:
		return aggregate.MarkReady(cmd.LineItemID())
	case ActionStartDelivery:
		return aggregate.StartDelivery(cmd.LineItemID())
	case ActionMarkDelivered:
		return aggregate.MarkDelivered(cmd.LineItemID())
	case ActionMarkReceived:
		return aggregate.MarkReceived(cmd.LineItemID())
	default:
		return errs.NewValueIsInvalidError("order action")
	}
}
