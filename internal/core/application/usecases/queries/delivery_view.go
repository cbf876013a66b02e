package queries

import (
	"time"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryView is the read model shared by the delivery queries.
type DeliveryView struct {
	ID          kernel.UUID
	RecipientID kernel.UUID
	AdminID     kernel.UUID
	CourierID   *kernel.UUID
	Status      delivery.Status
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const deliveryColumns = `
			d.id,
			d.recipient_id,
			d.admin_id,
			d.courier_id,
			d.status,
			d.photo_url,
			d.created_at,
			d.updated_at`

type deliveryRow struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	AdminID     uuid.UUID
	CourierID   *uuid.UUID
	Status      string
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r deliveryRow) toView() (DeliveryView, error) {
	id, err := toKernelUUID(r.ID)
	if err != nil {
		return DeliveryView{}, err
	}

	recipientID, err := toKernelUUID(r.RecipientID)
	if err != nil {
		return DeliveryView{}, err
	}

	adminID, err := toKernelUUID(r.AdminID)
	if err != nil {
		return DeliveryView{}, err
	}

	courierID, err := toOptionalKernelUUID(r.CourierID)
	if err != nil {
		return DeliveryView{}, err
	}

	status, err := delivery.ParseStatus(r.Status)
	if err != nil {
		return DeliveryView{}, err
	}

	return DeliveryView{
		ID:          id,
		RecipientID: recipientID,
		AdminID:     adminID,
		CourierID:   courierID,
		Status:      status,
		PhotoURL:    r.PhotoURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
