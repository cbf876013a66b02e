package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrDeleteRecipientCommandIsNotConstructed = errors.New(
	"DeleteRecipientCommand must be created via NewDeleteRecipientCommand constructor",
)

type DeleteRecipientCommand struct { //nolint:recvcheck //using for validation
	caller      access.Caller
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRecipientCommand(caller access.Caller, recipientID kernel.UUID) (DeleteRecipientCommand, error) {
	if err := recipientID.Validate(); err != nil {
		return DeleteRecipientCommand{}, err
	}

	return DeleteRecipientCommand{
		caller:      caller,
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRecipientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRecipientCommandIsNotConstructed)
}

func (c DeleteRecipientCommand) Caller() access.Caller    { return c.caller }
func (c DeleteRecipientCommand) RecipientID() kernel.UUID { return c.recipientID }
