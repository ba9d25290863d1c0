package commands_test

import (
	"errors"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateQuoteCommand(t *testing.T, acting actor.Actor, menuItemID kernel.UUID) commands.CreateQuoteRequestCommand {
	t.Helper()
	cmd, err := commands.NewCreateQuoteRequestCommand(
		acting, kernel.NewUUID(), time.Now().AddDate(0, 0, 14), "Hall A", 10, 5,
		[]commands.LineItemInput{{MenuItemID: menuItemID, Quantity: 2}})
	require.NoError(t, err)
	return cmd
}

func TestCreateQuoteRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActorWithRole(t, actor.Customer)
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Paneer Tikka", menu.Vegetarian, menu.Starter, true)
	require.NoError(t, err)
	cmd := newCreateQuoteCommand(t, customer, menuItem.ID())

	quoteRepo := new(MockQuoteRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCreateQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, menuItem.ID()).Return(menuItem, nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Add", mock.Anything, mock.AnythingOfType("*quote.QuoteRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	quoteRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateQuoteRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateQuoteRequestCommand{} // not constructed properly
	factory := new(MockCreateQuoteUoWFactory)
	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateQuoteRequestCommandHandler_Handle_NotCustomer(t *testing.T) {
	ctx := t.Context()
	chef := newActorWithRole(t, actor.Chef)
	cmd := newCreateQuoteCommand(t, chef, kernel.NewUUID())

	factory := new(MockCreateQuoteUoWFactory)
	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateQuoteRequestCommandHandler_Handle_PastPartyDate(t *testing.T) {
	ctx := t.Context()
	customer := newActorWithRole(t, actor.Customer)
	cmd, err := commands.NewCreateQuoteRequestCommand(
		customer, kernel.NewUUID(), time.Now().AddDate(0, 0, -1), "Hall A", 10, 5,
		[]commands.LineItemInput{{MenuItemID: kernel.NewUUID(), Quantity: 2}})
	require.NoError(t, err)

	factory := new(MockCreateQuoteUoWFactory)
	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateQuoteRequestCommandHandler_Handle_MenuItemUnavailable(t *testing.T) {
	ctx := t.Context()
	customer := newActorWithRole(t, actor.Customer)
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Lamb Rogan Josh", menu.NonVegetarian, menu.Mains, false)
	require.NoError(t, err)
	cmd := newCreateQuoteCommand(t, customer, menuItem.ID())

	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCreateQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, menuItem.ID()).Return(menuItem, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateQuoteRequestCommandHandler_Handle_MenuItemMissing(t *testing.T) {
	ctx := t.Context()
	customer := newActorWithRole(t, actor.Customer)
	menuItemID := kernel.NewUUID()
	cmd := newCreateQuoteCommand(t, customer, menuItemID)

	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCreateQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, menuItemID).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", menuItemID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateQuoteRequestCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	customer := newActorWithRole(t, actor.Customer)
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Paneer Tikka", menu.Vegetarian, menu.Starter, true)
	require.NoError(t, err)
	cmd := newCreateQuoteCommand(t, customer, menuItem.ID())

	quoteRepo := new(MockQuoteRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCreateQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, menuItem.ID()).Return(menuItem, nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Add", mock.Anything, mock.AnythingOfType("*quote.QuoteRequest")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteRequestCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
