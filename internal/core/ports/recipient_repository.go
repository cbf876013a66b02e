package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository persists Recipient aggregates. It follows the same contract
// as UserRepository.
type RecipientRepository interface {
	Add(ctx context.Context, aggregate *recipient.Recipient) error
	Update(ctx context.Context, aggregate *recipient.Recipient) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
	GetByCPF(ctx context.Context, cpf kernel.CPF) (*recipient.Recipient, error)
}
