// Package notificationrepo persists the notification log that the relay job drains.
package notificationrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null"`
	Message     string     `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		DeliveryID:  n.DeliveryID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Message:     n.Message(),
		CreatedAt:   n.CreatedAt(),
		PublishedAt: n.PublishedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, deliveryID, recipientID, dto.Message, dto.CreatedAt, dto.PublishedAt)
}
