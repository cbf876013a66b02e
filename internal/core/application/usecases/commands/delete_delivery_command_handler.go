package commands

import (
	"context"
)

// DeleteDeliveryCommandHandler removes a delivery in any status. Its notifications
// stay in the log.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("delete delivery"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
