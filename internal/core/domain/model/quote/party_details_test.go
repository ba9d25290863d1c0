package quote_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/quote"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartyDetails(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	partyDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid party details", func(t *testing.T) {
		details, err := quote.NewPartyDetails(partyDate, "123 Main St", 5, 10, now)

		require.NoError(t, err)
		require.NoError(t, details.Validate())
		assert.Equal(t, partyDate, details.PartyDate())
		assert.Equal(t, "123 Main St", details.PartyLocation())
		assert.Equal(t, 5, details.VegGuests())
		assert.Equal(t, 10, details.NonVegGuests())
	})

	t.Run("should allow a party later today", func(t *testing.T) {
		today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		_, err := quote.NewPartyDetails(today, "123 Main St", 1, 0, now)

		require.NoError(t, err)
	})

	t.Run("should allow zero guests on one side", func(t *testing.T) {
		_, err := quote.NewPartyDetails(partyDate, "123 Main St", 0, 20, now)

		require.NoError(t, err)
	})

	t.Run("should fail with empty location", func(t *testing.T) {
		_, err := quote.NewPartyDetails(partyDate, "", 5, 10, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "partyLocation")
	})

	t.Run("should fail with negative guest count", func(t *testing.T) {
		_, err := quote.NewPartyDetails(partyDate, "123 Main St", -1, 10, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("should fail with zero guests in total", func(t *testing.T) {
		_, err := quote.NewPartyDetails(partyDate, "123 Main St", 0, 0, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "at least one guest")
	})

	t.Run("should fail with a past party date", func(t *testing.T) {
		yesterday := time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)

		_, err := quote.NewPartyDetails(yesterday, "123 Main St", 5, 10, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "is in the past")
	})
}

func TestPartyDetails_Validate(t *testing.T) {
	t.Run("should fail for zero value details", func(t *testing.T) {
		var details quote.PartyDetails

		err := details.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, quote.ErrPartyDetailsIsNotConstructed)
	})
}
