package fulfillmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// GormFulfillmentRepository implements FulfillmentRepository using GORM.
type GormFulfillmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFulfillmentRepository creates a new GORM fulfillment repository.
func NewGormFulfillmentRepository(db *gorm.DB, tracker aggregateTracker) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fulfillment to the database.
func (r *GormFulfillmentRepository) Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("fulfillment insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing fulfillment to the database. The whole row is
// rewritten; the aggregate is the unit of atomicity.
func (r *GormFulfillmentRepository) Update(ctx context.Context, aggregate *fulfillment.Fulfillment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&FulfillmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageUnavailableError("fulfillment update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("fulfillment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a fulfillment by ID.
func (r *GormFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Fulfillment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FulfillmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment", id.String())
		}
		return nil, errs.NewStorageUnavailableError("fulfillment get", err)
	}

	return toDomain(dto)
}
