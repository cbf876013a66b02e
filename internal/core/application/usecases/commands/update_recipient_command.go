package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrUpdateRecipientCommandIsNotConstructed = errors.New(
	"UpdateRecipientCommand must be created via NewUpdateRecipientCommand constructor",
)

// RecipientChanges lists the fields to change. Nil fields are kept.
type RecipientChanges struct {
	Name     *string
	CPF      *kernel.CPF
	Address  *string
	Location *kernel.Location
}

type UpdateRecipientCommand struct { //nolint:recvcheck //using for validation
	caller      access.Caller
	recipientID kernel.UUID
	changes     RecipientChanges

	guard guard.ConstructorGuard
}

func NewUpdateRecipientCommand(
	caller access.Caller,
	recipientID kernel.UUID,
	changes RecipientChanges,
) (UpdateRecipientCommand, error) {
	problems := []error{recipientID.Validate()}
	if changes.Name != nil {
		problems = append(problems, requireText("name", *changes.Name))
	}
	if changes.CPF != nil {
		problems = append(problems, changes.CPF.Validate())
	}
	if changes.Address != nil {
		problems = append(problems, requireText("address", *changes.Address))
	}
	if changes.Location != nil {
		problems = append(problems, changes.Location.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateRecipientCommand{}, err
	}

	return UpdateRecipientCommand{
		caller:      caller,
		recipientID: recipientID,
		changes:     changes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipientCommandIsNotConstructed)
}

func (c UpdateRecipientCommand) Caller() access.Caller     { return c.caller }
func (c UpdateRecipientCommand) RecipientID() kernel.UUID  { return c.recipientID }
func (c UpdateRecipientCommand) Changes() RecipientChanges { return c.changes }
