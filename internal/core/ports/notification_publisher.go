package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/notification"
)

// NotificationPublisher hands notifications to the outside world. Publish returns
// only after every notification was acknowledged, or an error.
type NotificationPublisher interface {
	Publish(ctx context.Context, notifications []*notification.Notification) error
}
