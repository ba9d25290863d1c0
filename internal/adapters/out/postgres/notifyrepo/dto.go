// Package notifyrepo provides data transfer objects and mapping functions for
// the notification outbox. Rows are written in the same transaction as the
// state change they announce and relayed asynchronously by a background job.
package notifyrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// outbox notifications. A null sent_at marks a row as pending relay.
type NotificationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID        uuid.UUID  `gorm:"type:uuid;not null"`
	QuoteRequestID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Event          string     `gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	SentAt         *time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain entity to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:             n.ID().Bytes(),
		ActorID:        n.ActorID().Bytes(),
		QuoteRequestID: n.QuoteRequestID().Bytes(),
		Event:          n.Event(),
		CreatedAt:      n.CreatedAt(),
		SentAt:         n.SentAt(),
	}
}

// toDomain converts a database DTO to a notification domain entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}
	quoteRequestID, err := kernel.UUIDFromBytes(dto.QuoteRequestID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, actorID, quoteRequestID, dto.Event, dto.CreatedAt, dto.SentAt)
}
