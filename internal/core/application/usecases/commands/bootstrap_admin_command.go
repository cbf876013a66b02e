package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrBootstrapAdminCommandIsNotConstructed = errors.New(
	"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
)

// BootstrapAdminCommand seeds the first administrator at start-up, since accounts
// can otherwise only be created by an existing administrator.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	name     string
	cpf      kernel.CPF
	password string

	guard guard.ConstructorGuard
}

func NewBootstrapAdminCommand(name string, cpf kernel.CPF, password string) (BootstrapAdminCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(requireText("name", name), cpf.Validate(), passwordErr); err != nil {
		return BootstrapAdminCommand{}, err
	}

	return BootstrapAdminCommand{
		name:     name,
		cpf:      cpf,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

func (c BootstrapAdminCommand) Name() string     { return c.name }
func (c BootstrapAdminCommand) CPF() kernel.CPF  { return c.cpf }
func (c BootstrapAdminCommand) Password() string { return c.password }
