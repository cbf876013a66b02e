package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown cpf and for a wrong password alike.
var ErrInvalidCredentials = errs.NewNotAuthorizedError("authenticate", "invalid credentials")

type AuthenticateCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewAuthenticateCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h *AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (ports.IssuedToken, error) {
	if err := cmd.Validate(); err != nil {
		return ports.IssuedToken{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.IssuedToken{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByCPF(ctx, cmd.CPF())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.IssuedToken{}, ErrInvalidCredentials
		}
		return ports.IssuedToken{}, err
	}

	if err = h.hasher.Verify(u.PasswordHash(), cmd.Password()); err != nil {
		return ports.IssuedToken{}, ErrInvalidCredentials
	}

	return h.tokens.Issue(u.ID())
}
