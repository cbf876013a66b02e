package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"
)

// PublishNotificationsCommandHandler relays the notification log to the broker.
// The batch stays locked while it is published and marked, so concurrent relays
// never publish the same row twice. A publish failure rolls the batch back for the
// next run.
type PublishNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
}

func NewPublishNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
) PublishNotificationsCommandHandler {
	return PublishNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns how many notifications were published.
func (h *PublishNotificationsCommandHandler) Handle(ctx context.Context, cmd PublishNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	pending, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, pending); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(pending))
	for _, n := range pending {
		ids = append(ids, n.ID())
	}

	if err = repo.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pending), nil
}
