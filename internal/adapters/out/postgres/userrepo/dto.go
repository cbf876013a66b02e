// Package userrepo persists User aggregates in the users table.
package userrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row layout of the users table. Roles are stored by name.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	CPF          string    `gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		CPF:          u.CPF().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cpf, err := kernel.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}

	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, cpf, dto.PasswordHash, role, dto.CreatedAt)
}
