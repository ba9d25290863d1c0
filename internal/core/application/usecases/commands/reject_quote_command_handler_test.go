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

func TestRejectQuoteCommandHandler_Handle_Success(t *testing.T) {
	for _, role := range []actor.Role{actor.Admin, actor.Chef} {
		t.Run("as "+role.String(), func(t *testing.T) {
			ctx := t.Context()
			acting := newActorWithRole(t, role)
			aggregate, _ := newPendingQuote(t, kernel.NewUUID())
			cmd, err := commands.NewRejectQuoteCommand(acting, aggregate.ID())
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

			h := commands.NewRejectQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
			err = h.Handle(ctx, cmd)
			require.NoError(t, err)
			require.Equal(t, quote.QuoteRejected, aggregate.Status())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestRejectQuoteCommandHandler_Handle_NotAuthorized(t *testing.T) {
	for _, role := range []actor.Role{actor.Customer, actor.Delivery} {
		t.Run("as "+role.String(), func(t *testing.T) {
			ctx := t.Context()
			acting := newActorWithRole(t, role)
			cmd, err := commands.NewRejectQuoteCommand(acting, kernel.NewUUID())
			require.NoError(t, err)

			factory := new(MockQuoteUoWFactory)
			h := commands.NewRejectQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
			err = h.Handle(ctx, cmd)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrNotAuthorized)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestRejectQuoteCommandHandler_Handle_AlreadyApproved(t *testing.T) {
	ctx := t.Context()
	admin := newActorWithRole(t, actor.Admin)
	aggregate, _ := newApprovedQuote(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewRejectQuoteCommand(admin, aggregate.ID())
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

	h := commands.NewRejectQuoteCommandHandler(factory, commands.NewNotifier(nil, nil))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
