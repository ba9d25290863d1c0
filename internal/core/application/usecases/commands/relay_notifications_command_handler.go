package commands

import (
	"context"
	"log/slog"
	"time"
)

// RelayNotificationsCommandHandler drains the notification outbox.
// Delivery here is best-effort log-based notification; swapping in an email
// or push gateway only changes this handler. Each relayed notification is
// marked sent inside the same transaction that read it, so a crashed relay
// re-delivers rather than loses events.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	logger     *slog.Logger
}

// NewRelayNotificationsCommandHandler creates a handler for outbox draining.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	logger *slog.Logger,
) RelayNotificationsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "notification_relay"),
	}
}

// Handle relays up to the batch size of unsent notifications, oldest first.
func (h RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	unsent, err := repo.GetAllUnsent(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, n := range unsent {
		h.logger.InfoContext(ctx, "Notification delivered",
			"event", n.Event(),
			"actor_id", n.ActorID().String(),
			"quote_request_id", n.QuoteRequestID().String(),
		)

		n.MarkSent(time.Now())
		if err = repo.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
