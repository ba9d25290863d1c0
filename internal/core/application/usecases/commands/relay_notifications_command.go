package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var (
	ErrRelayNotificationsCommandIsNotConstructed = errors.New(
		"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
	)
	ErrRelayBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// RelayNotificationsCommand drains a batch of unsent notifications from the
// outbox. Triggered periodically by the relay job rather than by an actor.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command to relay up to batchSize notifications.
func NewRelayNotificationsCommand(batchSize int) (RelayNotificationsCommand, error) {
	if batchSize <= 0 {
		return RelayNotificationsCommand{}, ErrRelayBatchSizeIsInvalid
	}

	return RelayNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of notifications to relay.
func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}
