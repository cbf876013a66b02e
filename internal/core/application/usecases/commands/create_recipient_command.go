package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrCreateRecipientCommandIsNotConstructed = errors.New(
	"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
)

type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	caller      access.Caller
	recipientID kernel.UUID
	name        string
	cpf         kernel.CPF
	address     string
	location    kernel.Location

	guard guard.ConstructorGuard
}

func NewCreateRecipientCommand(
	caller access.Caller,
	recipientID kernel.UUID,
	name string,
	cpf kernel.CPF,
	address string,
	location kernel.Location,
) (CreateRecipientCommand, error) {
	if err := errors.Join(
		recipientID.Validate(),
		requireText("name", name),
		cpf.Validate(),
		requireText("address", address),
		location.Validate(),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return CreateRecipientCommand{
		caller:      caller,
		recipientID: recipientID,
		name:        name,
		cpf:         cpf,
		address:     address,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

func (c CreateRecipientCommand) Caller() access.Caller     { return c.caller }
func (c CreateRecipientCommand) RecipientID() kernel.UUID  { return c.recipientID }
func (c CreateRecipientCommand) Name() string              { return c.name }
func (c CreateRecipientCommand) CPF() kernel.CPF           { return c.cpf }
func (c CreateRecipientCommand) Address() string           { return c.address }
func (c CreateRecipientCommand) Location() kernel.Location { return c.location }

func requireText(param string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
