package delivery

import (
	"fmt"

	"fastfeet/internal/pkg/errs"
)

type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Awaiting means created or reset and waiting for a courier to pick the package up.
	Awaiting

	// PickedUp means a courier withdrew the package and it is in transit.
	PickedUp

	// Delivered means the package reached the recipient and a photo proves it.
	Delivered

	// Returned is the terminal status after delivery.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Awaiting:  "AGUARDANDO",
		PickedUp:  "RETIRADA",
		Delivered: "ENTREGUE",
		Returned:  "DEVOLVIDA",
	}
}

// ParseStatus maps the persisted and wire names back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Awaiting || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MakeAvailable resets to Awaiting from anywhere else.
func (s Status) MakeAvailable() (Status, error) {
	if s == Awaiting {
		return s, errs.NewInvalidStateError("mark delivery available", s, "delivery is already AGUARDANDO")
	}
	return Awaiting, nil
}

func (s Status) Withdraw() (Status, error) {
	if s != Awaiting {
		return s, errs.NewInvalidStateError("withdraw delivery", s, "delivery must be AGUARDANDO")
	}
	return PickedUp, nil
}

func (s Status) Complete() (Status, error) {
	if s != PickedUp {
		return s, errs.NewInvalidStateError("complete delivery", s, "delivery must be RETIRADA")
	}
	return Delivered, nil
}

func (s Status) Return() (Status, error) {
	if s != Delivered {
		return s, errs.NewInvalidStateError("return delivery", s, "delivery must be ENTREGUE")
	}
	return Returned, nil
}
