package queries

import (
	"context"

	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}
	if err := query.caller.RequireAdmin("get delivery"); err != nil {
		return DeliveryView{}, err
	}

	var row deliveryRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		WHERE d.id = ?
	`, query.deliveryID.Bytes()).Scan(&row)
	if result.Error != nil {
		return DeliveryView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DeliveryView{}, errs.NewObjectNotFoundError("delivery", query.deliveryID.String())
	}

	return row.toView()
}
