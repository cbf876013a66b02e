package commands

import (
	"context"
	"fmt"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/notification"
)

// TransitionDeliveryCommandHandler runs one workflow step:
//
//  1. load the delivery (NotFound comes before any state check)
//  2. apply the gated transition on the aggregate
//  3. write it back conditionally on the status observed in step 1
//  4. log the recipient notification for withdraw and complete
//
// Steps 3 and 4 commit together. When two callers race on the same delivery the
// conditional write lets only one of them through; the other gets InvalidState.
type TransitionDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewTransitionDeliveryCommandHandler(uowFactory DeliveryUoWFactory) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the status the delivery ended up in.
func (h *TransitionDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionDeliveryCommand,
) (delivery.Status, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return delivery.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return delivery.Unknown, err
	}
	observed := d.Status()

	var note *notification.Notification
	switch cmd.Transition() {
	case TransitionMarkAvailable:
		err = d.MarkAvailable(cmd.Caller())
	case TransitionWithdraw:
		if err = d.Withdraw(cmd.Caller()); err == nil {
			note, err = notification.NewWithdrawnNotification(d.ID(), d.RecipientID())
		}
	case TransitionComplete:
		if err = d.Complete(cmd.Caller()); err == nil {
			note, err = notification.NewDeliveredNotification(d.ID(), d.RecipientID())
		}
	case TransitionReturn:
		err = d.Return(cmd.Caller())
	default:
		err = fmt.Errorf("unsupported delivery transition %s", cmd.Transition())
	}
	if err != nil {
		return delivery.Unknown, err
	}

	if err = repo.Update(ctx, d, observed); err != nil {
		return delivery.Unknown, err
	}

	if note != nil {
		if err = uow.NotificationRepository().Add(ctx, note); err != nil {
			return delivery.Unknown, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return delivery.Unknown, err
	}

	return d.Status(), nil
}
