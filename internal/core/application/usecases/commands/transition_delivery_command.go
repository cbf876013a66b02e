package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via one of the New...DeliveryCommand constructors",
)

// Transition names a workflow step of a delivery.
type Transition int

const (
	TransitionUnknown Transition = iota
	TransitionMarkAvailable
	TransitionWithdraw
	TransitionComplete
	TransitionReturn
)

func (t Transition) String() string {
	switch t {
	case TransitionMarkAvailable:
		return "mark-available"
	case TransitionWithdraw:
		return "withdraw"
	case TransitionComplete:
		return "complete"
	case TransitionReturn:
		return "return"
	default:
		return "unknown"
	}
}

// TransitionDeliveryCommand moves one delivery one step along its workflow on behalf
// of the caller.
//
//	cmd, err := NewWithdrawDeliveryCommand(courier, deliveryID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller     access.Caller
	deliveryID kernel.UUID
	transition Transition

	guard guard.ConstructorGuard
}

func NewMarkDeliveryAvailableCommand(caller access.Caller, deliveryID kernel.UUID) (TransitionDeliveryCommand, error) {
	return newTransitionDeliveryCommand(caller, deliveryID, TransitionMarkAvailable)
}

func NewWithdrawDeliveryCommand(caller access.Caller, deliveryID kernel.UUID) (TransitionDeliveryCommand, error) {
	return newTransitionDeliveryCommand(caller, deliveryID, TransitionWithdraw)
}

func NewCompleteDeliveryCommand(caller access.Caller, deliveryID kernel.UUID) (TransitionDeliveryCommand, error) {
	return newTransitionDeliveryCommand(caller, deliveryID, TransitionComplete)
}

func NewReturnDeliveryCommand(caller access.Caller, deliveryID kernel.UUID) (TransitionDeliveryCommand, error) {
	return newTransitionDeliveryCommand(caller, deliveryID, TransitionReturn)
}

func newTransitionDeliveryCommand(
	caller access.Caller,
	deliveryID kernel.UUID,
	transition Transition,
) (TransitionDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return TransitionDeliveryCommand{}, err
	}
	if transition == TransitionUnknown {
		return TransitionDeliveryCommand{}, errs.NewValueIsRequiredError("transition")
	}

	return TransitionDeliveryCommand{
		caller:     caller,
		deliveryID: deliveryID,
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

func (c TransitionDeliveryCommand) Caller() access.Caller   { return c.caller }
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c TransitionDeliveryCommand) Transition() Transition  { return c.transition }
