package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const MaxNotificationBatch = 500

var ErrPublishNotificationsCommandIsNotConstructed = errors.New(
	"PublishNotificationsCommand must be created via NewPublishNotificationsCommand constructor",
)

// PublishNotificationsCommand relays up to batchSize pending notifications.
type PublishNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishNotificationsCommand(batchSize int) (PublishNotificationsCommand, error) {
	if batchSize < 1 || batchSize > MaxNotificationBatch {
		return PublishNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, MaxNotificationBatch)
	}

	return PublishNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPublishNotificationsCommandIsNotConstructed)
}

func (c PublishNotificationsCommand) BatchSize() int { return c.batchSize }
