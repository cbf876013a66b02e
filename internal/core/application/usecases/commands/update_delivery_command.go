package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// DeliveryChanges lists the fields an administrator wants to change. Nil fields are
// kept. Status changes made here bypass the workflow gates.
type DeliveryChanges struct {
	RecipientID *kernel.UUID
	CourierID   *kernel.UUID
	Status      *delivery.Status
	PhotoURL    *string
}

type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller     access.Caller
	deliveryID kernel.UUID
	changes    DeliveryChanges

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(
	caller access.Caller,
	deliveryID kernel.UUID,
	changes DeliveryChanges,
) (UpdateDeliveryCommand, error) {
	problems := []error{deliveryID.Validate()}
	if changes.RecipientID != nil {
		problems = append(problems, changes.RecipientID.Validate())
	}
	if changes.CourierID != nil {
		problems = append(problems, changes.CourierID.Validate())
	}
	if changes.Status != nil {
		problems = append(problems, changes.Status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		caller:     caller,
		deliveryID: deliveryID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) Caller() access.Caller    { return c.caller }
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID  { return c.deliveryID }
func (c UpdateDeliveryCommand) Changes() DeliveryChanges { return c.changes }
