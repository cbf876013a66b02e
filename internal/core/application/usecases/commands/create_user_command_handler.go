package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
)

// CreateUserCommandHandler lets an administrator register a new account. The cpf
// must not belong to anyone yet.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("create user"); err != nil {
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

	existing, err := repo.GetByCPF(ctx, cmd.CPF())
	if err = ensureCPFIsFree(existing != nil, err, cmd.CPF().String()); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.CPF(), hash, cmd.Role())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
