package commands_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/notification"
	"catering/internal/core/domain/model/quote"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, aggregate *quote.QuoteRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockQuoteRepository) Update(ctx context.Context, aggregate *quote.QuoteRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.QuoteRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.QuoteRequest), args.Error(1)
}
func (m *MockQuoteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}
func (m *MockMenuItemRepository) GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) GetAllUnsent(
	ctx context.Context, limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockQuoteUoW struct{ mock.Mock }

func (m *MockQuoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockCreateQuoteUoW struct{ mock.Mock }

func (m *MockCreateQuoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateQuoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateQuoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}
func (m *MockCreateQuoteUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCreateQuoteUoWFactory struct{ mock.Mock }

func (m *MockCreateQuoteUoWFactory) Create() commands.CreateQuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateQuoteUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func newActorWithRole(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	acting, err := actor.NewActor(kernel.NewUUID(), role, "")
	require.NoError(t, err)
	return acting
}

func newActorWithID(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	acting, err := actor.NewActor(id, role, "")
	require.NoError(t, err)
	return acting
}

// newPendingQuote builds a pending aggregate with one line item for a
// party two weeks out.
func newPendingQuote(t *testing.T, customerID kernel.UUID) (*quote.QuoteRequest, *quote.LineItem) {
	t.Helper()
	now := time.Now()
	details, err := quote.NewPartyDetails(now.AddDate(0, 0, 14), "12 Harbor Rd", 4, 6, now)
	require.NoError(t, err)
	item, err := quote.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)
	aggregate, err := quote.NewQuoteRequest(
		kernel.NewUUID(), customerID, details, []*quote.LineItem{item}, now)
	require.NoError(t, err)
	return aggregate, item
}

// newApprovedQuote builds an aggregate where the single line item already
// has a selected winning bid from the given chef.
func newApprovedQuote(t *testing.T, customerID, chefID kernel.UUID) (*quote.QuoteRequest, *quote.LineItem) {
	t.Helper()
	aggregate, item := newPendingQuote(t, customerID)
	price, err := kernel.NewPrice(2500)
	require.NoError(t, err)
	bid, err := quote.NewChefBid(kernel.NewUUID(), chefID, price, true)
	require.NoError(t, err)
	require.NoError(t, aggregate.SubmitBid(item.ID(), bid))
	require.NoError(t, aggregate.SelectBid(item.ID(), bid.ID()))
	return aggregate, item
}

// newConfirmedQuote builds a confirmed aggregate with a materialized item
// order assigned to the given chef.
func newConfirmedQuote(t *testing.T, customerID, chefID kernel.UUID) (*quote.QuoteRequest, *quote.LineItem) {
	t.Helper()
	aggregate, item := newApprovedQuote(t, customerID, chefID)
	require.NoError(t, aggregate.Confirm())
	return aggregate, item
}
