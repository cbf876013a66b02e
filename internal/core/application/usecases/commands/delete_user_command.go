package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	caller access.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(caller access.Caller, userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		caller: caller,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Caller() access.Caller { return c.caller }
func (c DeleteUserCommand) UserID() kernel.UUID   { return c.userID }
