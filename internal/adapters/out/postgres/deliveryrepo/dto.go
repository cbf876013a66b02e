// Package deliveryrepo persists Delivery aggregates in the deliveries table.
// Writes to an existing delivery are conditional on its stored status.
package deliveryrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row layout of the deliveries table. The status column holds
// the workflow names (AGUARDANDO, RETIRADA, ENTREGUE, DEVOLVIDA).
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	AdminID     uuid.UUID  `gorm:"type:uuid;not null"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	PhotoURL    *string
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := d.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		RecipientID: d.RecipientID().Bytes(),
		AdminID:     d.AdminID().Bytes(),
		CourierID:   courierID,
		Status:      d.Status().String(),
		PhotoURL:    d.PhotoURL(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	adminID, err := kernel.UUIDFromBytes(dto.AdminID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, recipientID, adminID, courierID, status, dto.PhotoURL, dto.CreatedAt, dto.UpdatedAt)
}
