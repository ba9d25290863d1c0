package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary scoped to one
// quote request aggregate. It provides transaction control so every
// multi-step mutation (quote plus line items, reset-then-approve bid
// selection, order materialization) either fully applies or not at all.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// QuoteRepository returns a QuoteRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	QuoteRepository() QuoteRepository

	// MenuItemRepository returns a MenuItemRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	MenuItemRepository() MenuItemRepository

	// NotificationRepository returns a NotificationRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	NotificationRepository() NotificationRepository
}
