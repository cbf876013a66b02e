package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller     access.Caller
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(caller access.Caller, deliveryID kernel.UUID) (DeleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return DeleteDeliveryCommand{
		caller:     caller,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) Caller() access.Caller   { return c.caller }
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
