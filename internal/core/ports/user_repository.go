// Package ports defines the contracts between the delivery tracking core and its
// infrastructure: repositories, the unit of work, credential and session services,
// and the notification publisher.
package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
)

// UserRepository persists User aggregates.
type UserRepository interface {
	// Add stores a new user. A duplicate cpf surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update stores every field of an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes the user. Returns ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByCPF returns ObjectNotFoundError when no user holds the cpf.
	GetByCPF(ctx context.Context, cpf kernel.CPF) (*user.User, error)
}
