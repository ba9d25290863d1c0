package commands

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/notification"
	"catering/internal/core/ports"
)

// Notifier publishes lifecycle events after successful commits.
// Publishing is fire-and-forget: a publish failure is logged and swallowed,
// never surfaced to the caller and never able to roll back the committed
// state change.
type Notifier struct {
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewNotifier creates a Notifier. A nil publisher disables notifications,
// which is convenient in tests.
func NewNotifier(publisher ports.NotificationPublisher, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Notifier{
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

// Notify records one event for the given actor and quote request.
func (n Notifier) Notify(ctx context.Context, actorID, quoteRequestID kernel.UUID, event string) {
	if n.publisher == nil {
		return
	}

	note, err := notification.NewNotification(kernel.NewUUID(), actorID, quoteRequestID, event, time.Now())
	if err == nil {
		err = n.publisher.Publish(ctx, note)
	}
	if err != nil {
		n.logger.WarnContext(ctx, "Failed to publish notification",
			"event", event, "quote_request_id", quoteRequestID.String(), "error", err)
	}
}
