package ports

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
)

// NotificationRepository persists the notification log.
type NotificationRepository interface {
	// Add appends a notification.
	Add(ctx context.Context, n *notification.Notification) error

	// GetUnpublished returns up to limit notifications not yet relayed, oldest first.
	// Inside a transaction the rows stay locked until it ends; rows locked by another
	// transaction are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkPublished stamps the given notifications with publishedAt.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}
