package commands

import (
	"context"
	"errors"
)

type UpdateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

func NewUpdateRecipientCommandHandler(uowFactory RecipientUoWFactory) UpdateRecipientCommandHandler {
	return UpdateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the changes. Keeping the current cpf does not trigger the
// uniqueness check.
func (h *UpdateRecipientCommandHandler) Handle(ctx context.Context, cmd UpdateRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("update recipient"); err != nil {
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

	r, err := repo.Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	changes := cmd.Changes()

	if changes.CPF != nil && !changes.CPF.IsEqual(r.CPF()) {
		existing, lookupErr := repo.GetByCPF(ctx, *changes.CPF)
		if err = ensureCPFIsFree(existing != nil, lookupErr, changes.CPF.String()); err != nil {
			return err
		}
	}

	address := r.Address()
	if changes.Address != nil {
		address = *changes.Address
	}
	location := r.Location()
	if changes.Location != nil {
		location = *changes.Location
	}

	problems := []error{r.Relocate(address, location)}
	if changes.Name != nil {
		problems = append(problems, r.Rename(*changes.Name))
	}
	if changes.CPF != nil {
		problems = append(problems, r.ChangeCPF(*changes.CPF))
	}
	if err = errors.Join(problems...); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
