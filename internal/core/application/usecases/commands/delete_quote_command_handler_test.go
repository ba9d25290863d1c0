package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := newActorWithRole(t, actor.Admin)
	aggregate, _ := newPendingQuote(t, kernel.NewUUID())
	cmd, err := commands.NewDeleteQuoteCommand(admin, aggregate.ID())
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteQuoteCommandHandler_Handle_NotAdmin(t *testing.T) {
	for _, role := range []actor.Role{actor.Customer, actor.Chef, actor.Delivery} {
		t.Run("as "+role.String(), func(t *testing.T) {
			ctx := t.Context()
			acting := newActorWithRole(t, role)
			cmd, err := commands.NewDeleteQuoteCommand(acting, kernel.NewUUID())
			require.NoError(t, err)

			factory := new(MockQuoteUoWFactory)
			h := commands.NewDeleteQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
			err = h.Handle(ctx, cmd)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrNotAuthorized)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestDeleteQuoteCommandHandler_Handle_QuoteMissing(t *testing.T) {
	ctx := t.Context()
	admin := newActorWithRole(t, actor.Admin)
	quoteRequestID := kernel.NewUUID()
	cmd, err := commands.NewDeleteQuoteCommand(admin, quoteRequestID)
	require.NoError(t, err)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, quoteRequestID).
			Return(nil, errs.NewObjectNotFoundError("quoteRequest", quoteRequestID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
