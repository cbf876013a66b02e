package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListCourierDeliveriesQueryHandler(db *gorm.DB) ListCourierDeliveriesQueryHandler {
	return ListCourierDeliveriesQueryHandler{db: db}
}

// Handle returns the caller's deliveries, newest first.
func (h ListCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListCourierDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []deliveryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		WHERE d.courier_id = ?
		ORDER BY d.created_at DESC, d.id
	`, query.caller.ID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]DeliveryView, 0, len(rows))
	for _, row := range rows {
		view, convErr := row.toView()
		if convErr != nil {
			return nil, convErr
		}
		views = append(views, view)
	}

	return views, nil
}
