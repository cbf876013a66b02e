package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
)

// DeliveryRepository persists Delivery aggregates.
type DeliveryRepository interface {
	// Add stores a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update is a compare-and-swap: the row is written only while its stored status
	// still equals expected. When no row matches, Update returns an InvalidStateError
	// and nothing is written, so of two concurrent transitions at most one wins.
	Update(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// Delete removes the delivery. Returns ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// ExistsByRecipient reports whether any delivery references the recipient.
	ExistsByRecipient(ctx context.Context, recipientID kernel.UUID) (bool, error)
}
