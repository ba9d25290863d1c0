// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: the acting identity is validated,
// its role and ownership are authorized against the transition table, the
// aggregate performs the transition, and the result is persisted atomically.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// MenuItemRepoFactory provides access to the menu catalog within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// NotificationRepoFactory provides access to the notification outbox within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// QuoteUoW manages transactions for quote-only operations.
	// Used by every lifecycle command except quote creation.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// CreateQuoteUoW manages transactions for quote creation, which reads
	// the menu catalog and writes the new aggregate under one transaction.
	CreateQuoteUoW interface {
		TxManager
		QuoteRepoFactory
		MenuItemRepoFactory
	}

	// CreateQuoteUoWFactory creates new quote creation unit of work instances.
	CreateQuoteUoWFactory interface {
		Create() CreateQuoteUoW
	}

	// NotificationUoW manages transactions for outbox relay operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
