package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/delivery"
)

type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that the recipient and, when given, the courier exist before
// storing the delivery.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	caller := cmd.Caller()
	if err := caller.RequireAdmin("create delivery"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	if courierID := cmd.CourierID(); courierID != nil {
		if _, err := uow.UserRepository().Get(ctx, *courierID); err != nil {
			return err
		}
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.RecipientID(), caller.ID(), cmd.CourierID(), cmd.Status(), cmd.PhotoURL())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
