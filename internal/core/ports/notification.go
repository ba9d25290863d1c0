package ports

import (
	"context"

	"catering/internal/core/domain/model/notification"
)

// NotificationPublisher records a lifecycle event for asynchronous delivery.
// Publishing is fire-and-forget and best-effort: command handlers call it
// after a successful commit and a publish failure must never roll back or
// fail the state change.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}

// NotificationRepository defines the persistence contract for the
// notification outbox consumed by the relay job.
type NotificationRepository interface {
	// Add persists a new outbox row.
	Add(ctx context.Context, n *notification.Notification) error

	// GetAllUnsent retrieves up to limit notifications that have not been
	// relayed yet, oldest first.
	GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Update persists the sent timestamp of a relayed notification.
	Update(ctx context.Context, n *notification.Notification) error
}
