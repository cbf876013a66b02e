package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand exchanges cpf and password for a session token.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	cpf      kernel.CPF
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(cpf kernel.CPF, password string) (AuthenticateCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(cpf.Validate(), passwordErr); err != nil {
		return AuthenticateCommand{}, err
	}

	return AuthenticateCommand{
		cpf:      cpf,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) CPF() kernel.CPF  { return c.cpf }
func (c AuthenticateCommand) Password() string { return c.password }
