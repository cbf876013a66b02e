// Package commands contains the write use cases of the delivery tracking service.
// Every command is built by a constructor that validates its input, and every
// handler runs its checks and its single mutation inside one unit of work.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UserUoW serves account management and authentication.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// RecipientUoW serves recipient management. Deleting a recipient needs to see
	// the deliveries that reference it.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
		DeliveryRepoFactory
	}

	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// DeliveryUoW serves delivery management and the workflow transitions, which
	// write a delivery and its notification in the same transaction.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, id)
	//   // ... transition, update, notify
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		UserRepoFactory
		RecipientRepoFactory
		DeliveryRepoFactory
		NotificationRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// NotificationUoW serves the notification relay.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
