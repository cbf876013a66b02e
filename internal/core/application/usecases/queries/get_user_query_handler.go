package queries

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRow struct {
	ID        uuid.UUID
	Name      string
	CPF       string `gorm:"column:cpf"`
	Role      string
	CreatedAt time.Time
}

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}
	if err := query.caller.RequireAdmin("get user"); err != nil {
		return GetUserQueryResponse{}, err
	}

	var row userRow

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cpf,
			role,
			created_at
		FROM users
		WHERE id = ?
	`, query.userID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetUserQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetUserQueryResponse{}, errs.NewObjectNotFoundError("user", query.userID.String())
	}

	id, err := toKernelUUID(row.ID)
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	role, err := access.ParseRole(row.Role)
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	return GetUserQueryResponse{
		ID:        id,
		Name:      row.Name,
		CPF:       row.CPF,
		Role:      role,
		CreatedAt: row.CreatedAt,
	}, nil
}
