package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceItemOrderCommandHandler_Handle_ChefStartsProcessing(t *testing.T) {
	ctx := t.Context()
	chefID := kernel.NewUUID()
	chef := newActorWithID(t, chefID, actor.Chef)
	aggregate, item := newConfirmedQuote(t, kernel.NewUUID(), chefID)
	cmd, err := commands.NewAdvanceItemOrderCommand(chef, aggregate.ID(), item.ID(), commands.ActionStartProcessing)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, quote.Processing, item.ItemOrder().Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceItemOrderCommandHandler_Handle_CustomerMarksReceived(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	customer := newActorWithID(t, customerID, actor.Customer)
	aggregate, item := newConfirmedQuote(t, customerID, kernel.NewUUID())
	require.NoError(t, aggregate.StartProcessing(item.ID()))
	require.NoError(t, aggregate.MarkReady(item.ID()))
	require.NoError(t, aggregate.StartDelivery(item.ID()))
	require.NoError(t, aggregate.MarkDelivered(item.ID()))

	cmd, err := commands.NewAdvanceItemOrderCommand(customer, aggregate.ID(), item.ID(), commands.ActionMarkReceived)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, quote.Received, item.ItemOrder().Status())
	uow.AssertExpectations(t)
}

func TestAdvanceItemOrderCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	delivery := newActorWithRole(t, actor.Delivery)
	cmd, err := commands.NewAdvanceItemOrderCommand(
		delivery, kernel.NewUUID(), kernel.NewUUID(), commands.ActionStartProcessing)
	require.NoError(t, err)

	factory := new(MockQuoteUoWFactory)
	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestAdvanceItemOrderCommandHandler_Handle_ChefNotAssigned(t *testing.T) {
	ctx := t.Context()
	otherChef := newActorWithRole(t, actor.Chef)
	aggregate, item := newConfirmedQuote(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewAdvanceItemOrderCommand(
		otherChef, aggregate.ID(), item.ID(), commands.ActionStartProcessing)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	require.Equal(t, quote.Confirmed, item.ItemOrder().Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAdvanceItemOrderCommandHandler_Handle_OutOfOrderStep(t *testing.T) {
	ctx := t.Context()
	chefID := kernel.NewUUID()
	chef := newActorWithID(t, chefID, actor.Chef)
	aggregate, item := newConfirmedQuote(t, kernel.NewUUID(), chefID)
	cmd, err := commands.NewAdvanceItemOrderCommand(chef, aggregate.ID(), item.ID(), commands.ActionMarkReady)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, quote.Confirmed, item.ItemOrder().Status())
	uow.AssertExpectations(t)
}

func TestAdvanceItemOrderCommandHandler_Handle_BeforeConfirmation(t *testing.T) {
	ctx := t.Context()
	chef := newActorWithRole(t, actor.Chef)
	aggregate, item := newPendingQuote(t, kernel.NewUUID())
	cmd, err := commands.NewAdvanceItemOrderCommand(
		chef, aggregate.ID(), item.ID(), commands.ActionStartProcessing)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceItemOrderCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
