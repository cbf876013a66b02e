package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UserChanges lists the fields an administrator wants to change. Nil fields are kept.
type UserChanges struct {
	Name     *string
	CPF      *kernel.CPF
	Password *string
	Role     *access.Role
}

type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	caller  access.Caller
	userID  kernel.UUID
	changes UserChanges

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(caller access.Caller, userID kernel.UUID, changes UserChanges) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setUserID(userID), cmd.setChanges(changes)); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Caller() access.Caller { return c.caller }
func (c UpdateUserCommand) UserID() kernel.UUID   { return c.userID }
func (c UpdateUserCommand) Changes() UserChanges  { return c.changes }

func (c *UpdateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *UpdateUserCommand) setChanges(changes UserChanges) error {
	var problems []error
	if changes.CPF != nil {
		problems = append(problems, changes.CPF.Validate())
	}
	if changes.Password != nil && *changes.Password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if changes.Role != nil {
		problems = append(problems, changes.Role.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.changes = changes
	return nil
}
