// Package ports defines repository interfaces for the catering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote request aggregates.
// The aggregate is stored as one unit: the quote request row plus its line
// items, chef bids, and item orders.
type QuoteRepository interface {
	// Add persists a new quote request aggregate with all its line items
	// in one transaction. Partial line-item sets must never exist.
	Add(ctx context.Context, aggregate *quote.QuoteRequest) error

	// Update persists changes to an existing aggregate using a
	// compare-and-swap on the aggregate version. A concurrent mutation
	// between read and write fails with errs.ErrVersionConflict and
	// nothing is written.
	Update(ctx context.Context, aggregate *quote.QuoteRequest) error

	// Get retrieves a quote request aggregate by its unique identifier,
	// complete with line items, bid pools, and item orders.
	Get(ctx context.Context, id kernel.UUID) (*quote.QuoteRequest, error)

	// Delete removes the quote request and all dependent line items,
	// chef bids, and item orders atomically (all-or-nothing).
	Delete(ctx context.Context, id kernel.UUID) error
}
