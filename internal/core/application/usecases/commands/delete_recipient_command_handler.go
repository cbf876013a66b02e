package commands

import (
	"context"

	"fastfeet/internal/pkg/errs"
)

// DeleteRecipientCommandHandler removes a recipient that no delivery references.
type DeleteRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

func NewDeleteRecipientCommandHandler(uowFactory RecipientUoWFactory) DeleteRecipientCommandHandler {
	return DeleteRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteRecipientCommandHandler) Handle(ctx context.Context, cmd DeleteRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("delete recipient"); err != nil {
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

	referenced, err := uow.DeliveryRepository().ExistsByRecipient(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("recipient", cmd.RecipientID(), "is referenced by deliveries")
	}

	if err = uow.RecipientRepository().Delete(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
