// Package notification implements the Notification entity: an immutable message
// addressed to a delivery's recipient, produced by workflow transitions and later
// relayed to the message broker.
package notification

import (
	"errors"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const (
	WithdrawnMessage = "Your package is on the way!"
	DeliveredMessage = "Your package has been delivered, thank you!"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

type Notification struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	recipientID kernel.UUID
	message     string
	createdAt   time.Time

	// publishedAt is nil until the relay has handed the notification to the broker
	publishedAt *time.Time
	guard       guard.ConstructorGuard
}

func NewNotification(deliveryID kernel.UUID, recipientID kernel.UUID, message string) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), deliveryID, recipientID, message, time.Now().UTC(), nil)
}

// NewWithdrawnNotification tells the recipient their package left with a courier.
func NewWithdrawnNotification(deliveryID kernel.UUID, recipientID kernel.UUID) (*Notification, error) {
	return NewNotification(deliveryID, recipientID, WithdrawnMessage)
}

// NewDeliveredNotification thanks the recipient once the package was delivered.
func NewDeliveredNotification(deliveryID kernel.UUID, recipientID kernel.UUID) (*Notification, error) {
	return NewNotification(deliveryID, recipientID, DeliveredMessage)
}

func RestoreNotification(
	id kernel.UUID,
	deliveryID kernel.UUID,
	recipientID kernel.UUID,
	message string,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Notification, error) {
	message = strings.TrimSpace(message)

	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		recipientID.Validate(),
		requireMessage(message),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:          id,
		deliveryID:  deliveryID,
		recipientID: recipientID,
		message:     message,
		createdAt:   createdAt,
		publishedAt: publishedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) DeliveryID() kernel.UUID  { return n.deliveryID }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) PublishedAt() *time.Time  { return n.publishedAt }

func (n *Notification) IsPublished() bool {
	return n.publishedAt != nil
}

func requireMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	return nil
}
