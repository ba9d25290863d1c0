package cmd

import (
	"log/slog"

	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   commands.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   commands.NewNotifier(postgres.NewOutboxPublisher(gormDB), logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateQuoteRequestCommandHandler() commands.CreateQuoteRequestCommandHandler {
	var f commands.CreateQuoteUoWFactory = FuncCreateQuoteUoWFactory(func() commands.CreateQuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateQuoteRequestCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitBidCommandHandler() commands.SubmitBidCommandHandler {
	return commands.NewSubmitBidCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSelectBidCommandHandler() commands.SelectBidCommandHandler {
	return commands.NewSelectBidCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	return commands.NewRejectQuoteCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdvanceItemOrderCommandHandler() commands.AdvanceItemOrderCommandHandler {
	return commands.NewAdvanceItemOrderCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteQuoteCommandHandler() commands.DeleteQuoteCommandHandler {
	return commands.NewDeleteQuoteCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayNotificationsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetCustomerQuoteQueryHandler() queries.GetCustomerQuoteQueryHandler {
	return queries.NewGetCustomerQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetChefQuoteQueryHandler() queries.GetChefQuoteQueryHandler {
	return queries.NewGetChefQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryOrdersQueryHandler() queries.GetDeliveryOrdersQueryHandler {
	return queries.NewGetDeliveryOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncCreateQuoteUoWFactory func() commands.CreateQuoteUoW

func (f FuncCreateQuoteUoWFactory) Create() commands.CreateQuoteUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
