package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

// BootstrapAdminCommandHandler creates the administrator unless the cpf is taken.
// Running it again is a no-op.
type BootstrapAdminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewBootstrapAdminCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle reports whether a new administrator was created.
func (h *BootstrapAdminCommandHandler) Handle(ctx context.Context, cmd BootstrapAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err := repo.GetByCPF(ctx, cmd.CPF())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return false, err
	}

	admin, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.CPF(), hash, access.RoleAdmin)
	if err != nil {
		return false, err
	}

	if err = repo.Add(ctx, admin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
