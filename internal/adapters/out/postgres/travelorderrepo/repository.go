package travelorderrepo

import (
	"context"
	"errors"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTravelOrderRepository implements TravelOrderRepository using GORM.
type GormTravelOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTravelOrderRepository creates a new GORM travel-order repository.
func NewGormTravelOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTravelOrderRepository {
	return &GormTravelOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new travel order to the database.
func (r *GormTravelOrderRepository) Add(ctx context.Context, aggregate *order.TravelOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing travel order using an optimistic compare-and-swap
// on the status column.
//
// The write only applies when the stored status still equals expectedStatus.
// When no row is updated the repository distinguishes the two possible causes:
// a missing row yields errs.ErrObjectNotFound, an existing row whose status
// changed concurrently yields errs.ErrVersionIsInvalid.
func (r *GormTravelOrderRepository) Update(
	ctx context.Context,
	aggregate *order.TravelOrder,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TravelOrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&TravelOrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("travelOrder", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a travel order by ID.
func (r *GormTravelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.TravelOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TravelOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("travelOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRequestedStartingBefore retrieves all orders still awaiting a decision
// whose travel window starts strictly before the given day.
//
// The cutoff is truncated to its day boundary before the comparison, so an
// order starting on the cutoff day itself is not matched. This mirrors
// Period.StartsBefore, which accepts a same-day start at creation time.
func (r *GormTravelOrderRepository) GetAllRequestedStartingBefore(
	ctx context.Context,
	day time.Time,
) ([]*order.TravelOrder, error) {
	cutoff := kernel.StartOfDay(day)

	var dtos []TravelOrderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND start_date < ?", order.Requested, cutoff).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.TravelOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
