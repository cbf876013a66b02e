package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recipientRow struct {
	ID                uuid.UUID
	Name              string
	CPF               string `gorm:"column:cpf"`
	Address           string
	LocationLatitude  float64
	LocationLongitude float64
}

type GetRecipientQueryHandler struct {
	db *gorm.DB
}

func NewGetRecipientQueryHandler(db *gorm.DB) GetRecipientQueryHandler {
	return GetRecipientQueryHandler{db: db}
}

func (h GetRecipientQueryHandler) Handle(ctx context.Context, query GetRecipientQuery) (GetRecipientQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRecipientQueryResponse{}, err
	}
	if err := query.caller.RequireAdmin("get recipient"); err != nil {
		return GetRecipientQueryResponse{}, err
	}

	var row recipientRow

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cpf,
			address,
			location_latitude,
			location_longitude
		FROM recipients
		WHERE id = ?
	`, query.recipientID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetRecipientQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetRecipientQueryResponse{}, errs.NewObjectNotFoundError("recipient", query.recipientID.String())
	}

	id, err := toKernelUUID(row.ID)
	if err != nil {
		return GetRecipientQueryResponse{}, err
	}

	loc, err := kernel.NewLocation(row.LocationLatitude, row.LocationLongitude)
	if err != nil {
		return GetRecipientQueryResponse{}, err
	}

	return GetRecipientQueryResponse{
		ID:       id,
		Name:     row.Name,
		CPF:      row.CPF,
		Address:  row.Address,
		Location: loc,
	}, nil
}
