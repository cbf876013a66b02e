package commands

import (
	"context"
	"errors"
)

type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies an administrator's edit. The write is conditional on the status
// read at the start, so an edit racing a workflow transition fails instead of
// overwriting it.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("update delivery"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	observed := d.Status()

	changes := cmd.Changes()

	if changes.RecipientID != nil && !changes.RecipientID.IsEqual(d.RecipientID()) {
		if _, err = uow.RecipientRepository().Get(ctx, *changes.RecipientID); err != nil {
			return err
		}
	}
	if changes.CourierID != nil && !d.IsAssignedTo(*changes.CourierID) {
		if _, err = uow.UserRepository().Get(ctx, *changes.CourierID); err != nil {
			return err
		}
	}

	var problems []error
	if changes.RecipientID != nil {
		problems = append(problems, d.ChangeRecipient(*changes.RecipientID))
	}
	if changes.CourierID != nil {
		problems = append(problems, d.AssignCourier(changes.CourierID))
	}
	if changes.PhotoURL != nil {
		problems = append(problems, d.AttachPhoto(changes.PhotoURL))
	}
	if changes.Status != nil {
		problems = append(problems, d.ChangeStatus(*changes.Status))
	}
	if err = errors.Join(problems...); err != nil {
		return err
	}

	if err = repo.Update(ctx, d, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
