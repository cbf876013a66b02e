package deliveryrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, aggregate.RecipientID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column with
//
//	UPDATE deliveries SET ... WHERE id = ? AND status = ?
//
// so a concurrent transition that committed first makes this one affect no rows.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("recipient_id", "courier_id", "status", "photo_url", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, aggregate.RecipientID())
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate.ID(), expected)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) explainMissedUpdate(ctx context.Context, id kernel.UUID, expected delivery.Status) error {
	var dto DeliveryDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewInvalidStateError("update delivery", dto.Status, "expected "+expected.String())
}

func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) ExistsByRecipient(ctx context.Context, recipientID kernel.UUID) (bool, error) {
	if err := recipientID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("recipient_id = ?", recipientID.Bytes()).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// translateWriteError reports a delivery pointing at a recipient that is gone.
func translateWriteError(err error, recipientID kernel.UUID) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundErrorWithCause("recipient", recipientID.String(), err)
	}
	return err
}
