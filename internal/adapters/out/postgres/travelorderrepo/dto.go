// Package travelorderrepo provides data transfer objects and mapping functions
// for travel-order persistence. This package implements the repository pattern
// for the travel-order aggregate, handling the conversion between domain
// entities and database representations.
package travelorderrepo

import (
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TravelOrderDTO represents the database structure for persisting travel-order
// aggregates. Maps the aggregate to a relational table with indexes for the
// owner-scoped listing and the status sweeps of the expiry job.
type TravelOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	RequesterName string
	Origin        string
	Destination   string
	StartDate     time.Time `gorm:"type:date"`
	EndDate       time.Time `gorm:"type:date"`
	Status        int       `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for travel-order entities.
// Overrides GORM's default naming convention to use "travel_orders".
func (TravelOrderDTO) TableName() string {
	return "travel_orders"
}

// fromDomain converts a travel-order domain aggregate to its database representation.
func fromDomain(travelOrder *order.TravelOrder) TravelOrderDTO {
	return TravelOrderDTO{
		ID:            travelOrder.ID().Bytes(),
		OwnerID:       travelOrder.OwnerID().Bytes(),
		RequesterName: travelOrder.RequesterName(),
		Origin:        travelOrder.Origin(),
		Destination:   travelOrder.Destination(),
		StartDate:     travelOrder.Period().Start(),
		EndDate:       travelOrder.Period().End(),
		Status:        int(travelOrder.Status()),
		CreatedAt:     travelOrder.CreatedAt(),
	}
}

// toDomain converts a database DTO to a travel-order domain aggregate.
// Reconstructs the complete aggregate including its persisted status using
// RestoreTravelOrder.
func toDomain(dto TravelOrderDTO) (*order.TravelOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewPeriod(dto.StartDate, dto.EndDate)
	if err != nil {
		return nil, err
	}

	return order.RestoreTravelOrder(
		id,
		ownerID,
		dto.RequesterName,
		dto.Origin,
		dto.Destination,
		period,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
