package recipientrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements ports.RecipientRepository using GORM.
type GormRecipientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRecipientRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipientRepository {
	return &GormRecipientRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRecipientRepository) Add(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, dto.CPF)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRecipientRepository) Update(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RecipientDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "cpf", "address", "location_latitude", "location_longitude").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, dto.CPF)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipient", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRecipientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RecipientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictError("recipient", id.String(), "is referenced by deliveries")
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipient", id.String())
	}

	return nil
}

func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRecipientRepository) GetByCPF(ctx context.Context, cpf kernel.CPF) (*recipient.Recipient, error) {
	if err := cpf.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "cpf = ?", cpf.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cpf", cpf.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func translateWriteError(err error, cpf string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictError("cpf", cpf, "is already registered")
	}
	return err
}
