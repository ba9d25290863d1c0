// Package notification models the fire-and-forget events emitted after every
// successful mutating command. Notifications are written to an outbox and
// relayed asynchronously; a failed or delayed notification never rolls back
// the state change it describes.
package notification

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance
	// was not created through a factory method.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

	// ErrEventIsRequired is returned when a notification is created without an event name.
	ErrEventIsRequired = errors.New("event is required")
)

// Event names emitted by the command handlers.
const (
	EventQuoteCreated   = "quote_created"
	EventBidSubmitted   = "bid_submitted"
	EventBidSelected    = "bid_selected"
	EventQuoteRejected  = "quote_rejected"
	EventOrderConfirmed = "order_confirmed"
	EventOrderAdvanced  = "order_advanced"
	EventQuoteDeleted   = "quote_deleted"
)

// Notification is one outbox row: which actor triggered which event on
// which quote request, and whether it has been relayed yet.
type Notification struct {
	id             kernel.UUID
	actorID        kernel.UUID
	quoteRequestID kernel.UUID
	event          string
	createdAt      time.Time
	sentAt         *time.Time

	isConstructed bool
}

// NewNotification creates an unsent notification.
func NewNotification(
	id, actorID, quoteRequestID kernel.UUID,
	event string,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		actorID.Validate(),
		quoteRequestID.Validate(),
	); err != nil {
		return nil, err
	}
	if event == "" {
		return nil, ErrEventIsRequired
	}

	return &Notification{
		id:             id,
		actorID:        actorID,
		quoteRequestID: quoteRequestID,
		event:          event,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id, actorID, quoteRequestID kernel.UUID,
	event string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, actorID, quoteRequestID, event, createdAt)
	if err != nil {
		return nil, err
	}
	n.sentAt = sentAt
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// ActorID returns the actor whose command produced the event.
func (n *Notification) ActorID() kernel.UUID {
	return n.actorID
}

// QuoteRequestID returns the affected quote request.
func (n *Notification) QuoteRequestID() kernel.UUID {
	return n.quoteRequestID
}

// Event returns the event name.
func (n *Notification) Event() string {
	return n.event
}

// CreatedAt returns when the event was recorded.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the notification was relayed, or nil while unsent.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records the relay timestamp.
func (n *Notification) MarkSent(at time.Time) {
	n.sentAt = &at
}
