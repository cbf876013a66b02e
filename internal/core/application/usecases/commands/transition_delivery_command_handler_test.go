package commands_test

import (
	"errors"
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionDeliveryCommandHandler_Withdraw(t *testing.T) {
	ctx := t.Context()
	courier := newCourier(t)
	d := newStoredDelivery(t, delivery.Awaiting, nil, nil)
	cmd, err := commands.NewWithdrawDeliveryCommand(courier, d.ID())
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	notifications := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		deliveries.On("Update", ctx, d, delivery.Awaiting).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifications).Once(),
		notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.DeliveryID().IsEqual(d.ID()) &&
				n.RecipientID().IsEqual(d.RecipientID()) &&
				n.Message() == notification.WithdrawnMessage
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
	status, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, status)
	assert.True(t, d.IsAssignedTo(courier.ID()))
	deliveries.AssertExpectations(t)
	notifications.AssertNumberOfCalls(t, "Add", 1)
	uow.AssertExpectations(t)
}

func TestTransitionDeliveryCommandHandler_Complete(t *testing.T) {
	courier := newCourier(t)
	courierID := courier.ID()

	t.Run("assigned courier with photo notifies recipient", func(t *testing.T) {
		ctx := t.Context()
		d := newStoredDelivery(t, delivery.PickedUp, &courierID, ptr("proof.jpg"))
		cmd, _ := commands.NewCompleteDeliveryCommand(courier, d.ID())

		deliveries := new(MockDeliveryRepository)
		notifications := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("NotificationRepository").Return(notifications).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		deliveries.On("Update", ctx, d, delivery.PickedUp).Return(nil).Once()
		notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Message() == notification.DeliveredMessage
		})).Return(nil).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		status, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, status)
		deliveries.AssertExpectations(t)
		notifications.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		delivery *delivery.Delivery
		wantErr  error
	}{
		{
			name:     "missing photo",
			delivery: newStoredDelivery(t, delivery.PickedUp, &courierID, nil),
			wantErr:  errs.ErrInvalidState,
		},
		{
			name:     "not the assigned courier",
			delivery: newStoredDelivery(t, delivery.PickedUp, ptr(kernel.NewUUID()), ptr("proof.jpg")),
			wantErr:  errs.ErrNotAuthorized,
		},
		{
			name:     "not picked up yet",
			delivery: newStoredDelivery(t, delivery.Awaiting, &courierID, ptr("proof.jpg")),
			wantErr:  errs.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+" fails before any write", func(t *testing.T) {
			ctx := t.Context()
			before := tt.delivery.Status()
			cmd, _ := commands.NewCompleteDeliveryCommand(courier, tt.delivery.ID())

			deliveries := new(MockDeliveryRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("DeliveryRepository").Return(deliveries).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			deliveries.On("Get", ctx, tt.delivery.ID()).Return(tt.delivery, nil).Once()

			h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, tt.delivery.Status())
			deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "NotificationRepository")
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestTransitionDeliveryCommandHandler_WrongStatusLeavesRecordUntouched(t *testing.T) {
	admin := newAdmin(t)
	courier := newCourier(t)
	courierID := courier.ID()

	tests := []struct {
		name    string
		newCmd  func(kernel.UUID) (commands.TransitionDeliveryCommand, error)
		from    delivery.Status
		courier *kernel.UUID
	}{
		{"mark available from AGUARDANDO", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewMarkDeliveryAvailableCommand(admin, id)
		}, delivery.Awaiting, nil},
		{"withdraw from RETIRADA", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewWithdrawDeliveryCommand(courier, id)
		}, delivery.PickedUp, nil},
		{"withdraw from DEVOLVIDA", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewWithdrawDeliveryCommand(courier, id)
		}, delivery.Returned, nil},
		{"complete from ENTREGUE", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewCompleteDeliveryCommand(courier, id)
		}, delivery.Delivered, &courierID},
		{"return from RETIRADA", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewReturnDeliveryCommand(admin, id)
		}, delivery.PickedUp, nil},
		{"return from DEVOLVIDA", func(id kernel.UUID) (commands.TransitionDeliveryCommand, error) {
			return commands.NewReturnDeliveryCommand(courier, id)
		}, delivery.Returned, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			d := newStoredDelivery(t, tt.from, tt.courier, ptr("proof.jpg"))
			cmd, err := tt.newCmd(d.ID())
			require.NoError(t, err)

			deliveries := new(MockDeliveryRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("DeliveryRepository").Return(deliveries).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()

			h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
			_, err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Equal(t, tt.from, d.Status())
			deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTransitionDeliveryCommandHandler_MarkAvailableAndReturn(t *testing.T) {
	t.Run("admin marks available", func(t *testing.T) {
		ctx := t.Context()
		d := newStoredDelivery(t, delivery.Returned, nil, nil)
		cmd, _ := commands.NewMarkDeliveryAvailableCommand(newAdmin(t), d.ID())

		deliveries := new(MockDeliveryRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		deliveries.On("Update", ctx, d, delivery.Returned).Return(nil).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		status, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, delivery.Awaiting, status)
		uow.AssertNotCalled(t, "NotificationRepository")
	})

	t.Run("courier cannot mark available", func(t *testing.T) {
		ctx := t.Context()
		d := newStoredDelivery(t, delivery.Delivered, nil, nil)
		cmd, _ := commands.NewMarkDeliveryAvailableCommand(newCourier(t), d.ID())

		deliveries := new(MockDeliveryRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("any caller returns a delivered package", func(t *testing.T) {
		ctx := t.Context()
		d := newStoredDelivery(t, delivery.Delivered, nil, ptr("proof.jpg"))
		cmd, _ := commands.NewReturnDeliveryCommand(newCourier(t), d.ID())

		deliveries := new(MockDeliveryRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		deliveries.On("Update", ctx, d, delivery.Delivered).Return(nil).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		status, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, delivery.Returned, status)
	})
}

func TestTransitionDeliveryCommandHandler_Errors(t *testing.T) {
	t.Run("not found comes first", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewWithdrawDeliveryCommand(newAdmin(t), id)

		deliveries := new(MockDeliveryRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("delivery", id)).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("lost compare-and-swap", func(t *testing.T) {
		ctx := t.Context()
		d := newStoredDelivery(t, delivery.Awaiting, nil, nil)
		cmd, _ := commands.NewWithdrawDeliveryCommand(newCourier(t), d.ID())

		deliveries := new(MockDeliveryRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveries).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		deliveries.On("Update", ctx, d, delivery.Awaiting).
			Return(errs.NewInvalidStateError("withdraw delivery", delivery.Awaiting, "status changed concurrently")).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		uow.AssertNotCalled(t, "NotificationRepository")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewReturnDeliveryCommand(newAdmin(t), kernel.NewUUID())

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("command not constructed", func(t *testing.T) {
		h := commands.NewTransitionDeliveryCommandHandler(MockDeliveryUoWFactory{new(MockUoW)})
		_, err := h.Handle(t.Context(), commands.TransitionDeliveryCommand{})

		require.ErrorIs(t, err, commands.ErrTransitionDeliveryCommandIsNotConstructed)
	})
}
