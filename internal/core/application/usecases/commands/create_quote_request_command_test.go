package commands_test

import (
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateQuoteRequestCommand_ValidInput(t *testing.T) {
	customer := newActorWithRole(t, actor.Customer)
	quoteRequestID := kernel.NewUUID()
	partyDate := time.Now().AddDate(0, 0, 14)
	items := []commands.LineItemInput{{MenuItemID: kernel.NewUUID(), Quantity: 3}}

	cmd, err := commands.NewCreateQuoteRequestCommand(
		customer, quoteRequestID, partyDate, "Hall A", 10, 5, items)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.QuoteRequestID().IsEqual(quoteRequestID))
	assert.Equal(t, partyDate, cmd.PartyDate())
	assert.Equal(t, "Hall A", cmd.PartyLocation())
	assert.Equal(t, 10, cmd.VegGuests())
	assert.Equal(t, 5, cmd.NonVegGuests())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateQuoteRequestCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewCreateQuoteRequestCommand(
		actor.Actor{}, kernel.NewUUID(), time.Now(), "Hall A", 10, 5,
		[]commands.LineItemInput{{MenuItemID: kernel.NewUUID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestNewCreateQuoteRequestCommand_EmptyLocation(t *testing.T) {
	customer := newActorWithRole(t, actor.Customer)
	_, err := commands.NewCreateQuoteRequestCommand(
		customer, kernel.NewUUID(), time.Now(), "", 10, 5,
		[]commands.LineItemInput{{MenuItemID: kernel.NewUUID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateQuoteRequestCommand_NoItems(t *testing.T) {
	customer := newActorWithRole(t, actor.Customer)
	_, err := commands.NewCreateQuoteRequestCommand(
		customer, kernel.NewUUID(), time.Now(), "Hall A", 10, 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLineItemInputsAreRequired)
}

func TestNewCreateQuoteRequestCommand_InvalidQuantity(t *testing.T) {
	customer := newActorWithRole(t, actor.Customer)
	_, err := commands.NewCreateQuoteRequestCommand(
		customer, kernel.NewUUID(), time.Now(), "Hall A", 10, 5,
		[]commands.LineItemInput{{MenuItemID: kernel.NewUUID(), Quantity: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateQuoteRequestCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CreateQuoteRequestCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateQuoteRequestCommandIsNotConstructed)
}
