package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the recipient unless another one already holds the cpf.
func (h *CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("create recipient"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RecipientRepository()

	existing, err := repo.GetByCPF(ctx, cmd.CPF())
	if err = ensureCPFIsFree(existing != nil, err, cmd.CPF().String()); err != nil {
		return err
	}

	r, err := recipient.NewRecipient(cmd.RecipientID(), cmd.Name(), cmd.CPF(), cmd.Address(), cmd.Location())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
