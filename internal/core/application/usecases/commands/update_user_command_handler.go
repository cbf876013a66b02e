package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/ports"
)

// UpdateUserCommandHandler applies an administrator's partial update to an account.
// Uniqueness is re-checked only when the cpf actually changes, and the password is
// re-hashed only when a new one is supplied.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("update user"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	changes := cmd.Changes()

	if changes.CPF != nil && !changes.CPF.IsEqual(u.CPF()) {
		existing, lookupErr := repo.GetByCPF(ctx, *changes.CPF)
		if err = ensureCPFIsFree(existing != nil, lookupErr, changes.CPF.String()); err != nil {
			return err
		}
	}

	var problems []error
	if changes.Name != nil {
		problems = append(problems, u.Rename(*changes.Name))
	}
	if changes.CPF != nil {
		problems = append(problems, u.ChangeCPF(*changes.CPF))
	}
	if changes.Role != nil {
		problems = append(problems, u.ChangeRole(*changes.Role))
	}
	if err = errors.Join(problems...); err != nil {
		return err
	}

	if changes.Password != nil {
		hash, hashErr := h.hasher.Hash(*changes.Password)
		if hashErr != nil {
			return hashErr
		}
		if err = u.ChangePasswordHash(hash); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
