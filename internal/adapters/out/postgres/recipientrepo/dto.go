// Package recipientrepo persists Recipient aggregates in the recipients table.
package recipientrepo

import (
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

type RecipientDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"not null"`
	CPF      string      `gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	Address  string      `gorm:"not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

// LocationDTO stores the geographic position as location_latitude and location_longitude.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(r *recipient.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:      r.ID().Bytes(),
		Name:    r.Name(),
		CPF:     r.CPF().String(),
		Address: r.Address(),
		Location: LocationDTO{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
	}
}

func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cpf, err := kernel.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(id, dto.Name, cpf, dto.Address, loc)
}
