package postgres

import (
	"context"

	"catering/internal/adapters/out/postgres/notifyrepo"
	"catering/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// OutboxPublisher implements NotificationPublisher by writing outbox rows.
// Rows stay pending until the relay job picks them up, so a publisher
// failure never affects the state change it announces.
type OutboxPublisher struct {
	db *gorm.DB
}

// NewOutboxPublisher creates a publisher backed by the notifications table.
func NewOutboxPublisher(db *gorm.DB) *OutboxPublisher {
	return &OutboxPublisher{db: db}
}

// Publish persists the notification as an unsent outbox row.
func (p *OutboxPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	return notifyrepo.NewGormNotificationRepository(p.db).Add(ctx, n)
}
