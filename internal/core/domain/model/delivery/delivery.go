package delivery

import (
	"errors"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

type Delivery struct {
	id          kernel.UUID
	recipientID kernel.UUID
	adminID     kernel.UUID

	// courierID is the assigned courier, nil until someone withdraws the package
	courierID *kernel.UUID
	status    Status

	// photoURL references the proof-of-delivery image
	photoURL  *string
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewDelivery creates a delivery registered by adminID. A zero status defaults to Awaiting.
func NewDelivery(
	id kernel.UUID,
	recipientID kernel.UUID,
	adminID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	photoURL *string,
) (*Delivery, error) {
	if status == Unknown {
		status = Awaiting
	}

	now := time.Now().UTC()
	d := &Delivery{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		d.setRecipient(recipientID),
		d.setAdmin(adminID),
		d.setCourier(courierID),
		d.setStatus(status),
		d.setPhotoURL(photoURL),
	); err != nil {
		return nil, err
	}
	if err := requirePhotoWhenDelivered("create delivery", Unknown, status, d.photoURL); err != nil {
		return nil, err
	}
	d.id = id

	return d, nil
}

// RestoreDelivery rebuilds a persisted delivery without applying workflow rules.
func RestoreDelivery(
	id kernel.UUID,
	recipientID kernel.UUID,
	adminID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	photoURL *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		d.setRecipient(recipientID),
		d.setAdmin(adminID),
		d.setCourier(courierID),
		d.setStatus(status),
		d.setPhotoURL(photoURL),
	); err != nil {
		return nil, err
	}
	d.id = id

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID          { return d.id }
func (d *Delivery) RecipientID() kernel.UUID { return d.recipientID }
func (d *Delivery) AdminID() kernel.UUID     { return d.adminID }
func (d *Delivery) CourierID() *kernel.UUID  { return d.courierID }
func (d *Delivery) Status() Status           { return d.status }
func (d *Delivery) PhotoURL() *string        { return d.photoURL }
func (d *Delivery) CreatedAt() time.Time     { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time     { return d.updatedAt }

// IsAssignedTo reports whether courierID is the delivery's assigned courier.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}

// MarkAvailable resets the delivery to AGUARDANDO. Only an admin may do it, from any
// other status.
func (d *Delivery) MarkAvailable(caller access.Caller) error {
	if err := caller.RequireAdmin("mark delivery available"); err != nil {
		return err
	}

	next, err := d.status.MakeAvailable()
	if err != nil {
		return err
	}

	d.status = next
	d.touch()
	return nil
}

// Withdraw hands an AGUARDANDO delivery to the calling courier.
func (d *Delivery) Withdraw(caller access.Caller) error {
	if err := caller.RequireCourier("withdraw delivery"); err != nil {
		return err
	}

	next, err := d.status.Withdraw()
	if err != nil {
		return err
	}

	courierID := caller.ID()
	d.courierID = &courierID
	d.status = next
	d.touch()
	return nil
}

// Complete marks a RETIRADA delivery as ENTREGUE. The caller must be the assigned
// courier and a photo must already be attached.
func (d *Delivery) Complete(caller access.Caller) error {
	const action = "complete delivery"

	if err := caller.RequireCourier(action); err != nil {
		return err
	}

	next, err := d.status.Complete()
	if err != nil {
		return err
	}

	if !d.IsAssignedTo(caller.ID()) {
		return errs.NewNotAuthorizedError(action, "only the assigned courier can complete the delivery")
	}

	if d.photoURL == nil {
		return errs.NewInvalidStateError(action, d.status, "photoUrl is required")
	}

	d.status = next
	d.touch()
	return nil
}

// Return marks an ENTREGUE delivery as DEVOLVIDA. Any authenticated caller may do it.
func (d *Delivery) Return(caller access.Caller) error {
	if err := caller.RequireAuthenticated("return delivery"); err != nil {
		return err
	}

	next, err := d.status.Return()
	if err != nil {
		return err
	}

	d.status = next
	d.touch()
	return nil
}

// ChangeRecipient, AssignCourier, ChangeStatus and AttachPhoto back the admin's
// free-form update. They validate values but apply no workflow order. The one rule
// kept is that an ENTREGUE delivery carries a photo.

func (d *Delivery) ChangeRecipient(recipientID kernel.UUID) error {
	if err := d.setRecipient(recipientID); err != nil {
		return err
	}
	d.touch()
	return nil
}

func (d *Delivery) AssignCourier(courierID *kernel.UUID) error {
	if err := d.setCourier(courierID); err != nil {
		return err
	}
	d.touch()
	return nil
}

func (d *Delivery) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := requirePhotoWhenDelivered("change delivery status", d.status, status, d.photoURL); err != nil {
		return err
	}
	if err := d.setStatus(status); err != nil {
		return err
	}
	d.touch()
	return nil
}

func (d *Delivery) AttachPhoto(photoURL *string) error {
	if err := d.setPhotoURL(photoURL); err != nil {
		return err
	}
	d.touch()
	return nil
}

func requirePhotoWhenDelivered(action string, current Status, next Status, photoURL *string) error {
	if next == Delivered && photoURL == nil {
		return errs.NewInvalidStateError(action, current, "photoUrl is required for ENTREGUE")
	}
	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setRecipient(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	d.recipientID = recipientID
	return nil
}

func (d *Delivery) setAdmin(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("adminId", err)
	}
	d.adminID = adminID
	return nil
}

func (d *Delivery) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		d.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliverymanId", err)
	}
	id := *courierID
	d.courierID = &id
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setPhotoURL(photoURL *string) error {
	if photoURL == nil {
		d.photoURL = nil
		return nil
	}
	url := strings.TrimSpace(*photoURL)
	if url == "" {
		return errs.NewValueIsInvalidError("photoUrl must not be blank")
	}
	d.photoURL = &url
	return nil
}
