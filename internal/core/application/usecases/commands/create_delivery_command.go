package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand registers a package for a recipient. The creating caller is
// recorded as the delivery's admin. Courier, status and photo are optional; the
// status defaults to AGUARDANDO.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller      access.Caller
	deliveryID  kernel.UUID
	recipientID kernel.UUID
	courierID   *kernel.UUID
	status      delivery.Status
	photoURL    *string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	caller access.Caller,
	deliveryID kernel.UUID,
	recipientID kernel.UUID,
	courierID *kernel.UUID,
	status delivery.Status,
	photoURL *string,
) (CreateDeliveryCommand, error) {
	problems := []error{deliveryID.Validate(), recipientID.Validate()}
	if courierID != nil {
		problems = append(problems, courierID.Validate())
	}
	if status != delivery.Unknown {
		problems = append(problems, status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		caller:      caller,
		deliveryID:  deliveryID,
		recipientID: recipientID,
		courierID:   courierID,
		status:      status,
		photoURL:    photoURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Caller() access.Caller    { return c.caller }
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID  { return c.deliveryID }
func (c CreateDeliveryCommand) RecipientID() kernel.UUID { return c.recipientID }
func (c CreateDeliveryCommand) CourierID() *kernel.UUID  { return c.courierID }
func (c CreateDeliveryCommand) Status() delivery.Status  { return c.status }
func (c CreateDeliveryCommand) PhotoURL() *string        { return c.photoURL }
