package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers an administrator or courier account.
//
//	cmd, err := NewCreateUserCommand(caller, kernel.NewUUID(), "Ana", cpf, "s3cret", access.RoleCourier)
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	caller   access.Caller
	userID   kernel.UUID
	name     string
	cpf      kernel.CPF
	password string
	role     access.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	caller access.Caller,
	userID kernel.UUID,
	name string,
	cpf kernel.CPF,
	password string,
	role access.Role,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setCPF(cpf),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Caller() access.Caller { return c.caller }
func (c CreateUserCommand) UserID() kernel.UUID   { return c.userID }
func (c CreateUserCommand) Name() string          { return c.name }
func (c CreateUserCommand) CPF() kernel.CPF       { return c.cpf }
func (c CreateUserCommand) Password() string      { return c.password }
func (c CreateUserCommand) Role() access.Role     { return c.role }

func (c *CreateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateUserCommand) setCPF(cpf kernel.CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	c.cpf = cpf
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
