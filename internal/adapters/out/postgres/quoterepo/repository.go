package quoterepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormQuoteRepository implements QuoteRepository using GORM.
// Updates use a compare-and-swap on the aggregate version column so
// concurrent mutations of the same quote serialize instead of losing writes.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote request repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote request aggregate with all its line items.
// A duplicate identifier maps to a VersionConflictError so concurrent
// creation attempts surface as a retryable conflict.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.QuoteRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return errs.NewVersionConflictErrorWithCause("quoteRequest", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quote request aggregate. The quote row update is
// guarded by WHERE version = <loaded version>; a zero row count means another
// writer got there first and the whole update fails with a VersionConflictError.
// Child bids and item orders are upserted afterwards within the same transaction.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.QuoteRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&QuoteRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"total_price_cents": dto.TotalPriceCents,
			"status":            dto.Status,
			"is_confirmed":      dto.IsConfirmed,
			"version":           dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("quoteRequest", aggregate.ID().String())
	}

	for _, item := range dto.LineItems {
		for _, bid := range item.Bids {
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "visible_to_customer"}),
			}).Create(&bid).Error
			if err != nil {
				return err
			}
		}

		if item.ItemOrder != nil {
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status"}),
			}).Create(item.ItemOrder).Error
			if err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote request aggregate by ID, including line items,
// bid pools and item orders.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.QuoteRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteRequestDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems.Bids").
		Preload("LineItems.ItemOrder").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quoteRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the quote request and all dependent rows. The foreign key
// constraints cascade the delete to line items, bids and item orders.
func (r *GormQuoteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&QuoteRequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("quoteRequest", id.String())
	}

	return nil
}
