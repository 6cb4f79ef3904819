package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/core/domain/services"
	"travelorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTravelOrderQueryHandler loads a single travel order from the database
// and enforces the visibility rules of the access policy.
//
// The order of checks matters: a missing order is always reported as
// errs.ErrObjectNotFound, while an existing order the principal may not see
// is reported as errs.ErrAccessDenied. The two are never conflated.
type GetTravelOrderQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetTravelOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection and the access policy.
func NewGetTravelOrderQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetTravelOrderQueryHandler {
	return GetTravelOrderQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query and returns the travel-order read model.
// Returns errs.ErrObjectNotFound when no order has the requested identifier
// and errs.ErrAccessDenied when the principal is neither the owner nor an
// administrator.
func (h GetTravelOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTravelOrderQuery,
) (TravelOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TravelOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			requester_name,
			origin,
			destination,
			start_date,
			end_date,
			status,
			created_at
		FROM travel_orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id, ownerID                        uuid.UUID
		requesterName, origin, destination string
		startDate, endDate, createdAt      time.Time
		status                             int
	)

	err := row.Scan(
		&id,
		&ownerID,
		&requesterName,
		&origin,
		&destination,
		&startDate,
		&endDate,
		&status,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TravelOrderQueryResponse{}, errs.NewObjectNotFoundError("travelOrder", query.OrderID().String())
	}
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	ownerUUID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	period, err := kernel.NewPeriod(startDate, endDate)
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	travelOrder, err := order.RestoreTravelOrder(
		orderID, ownerUUID, requesterName, origin, destination, period, order.Status(status), createdAt)
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	if !h.accessPolicy.CanView(query.Principal(), travelOrder) {
		return TravelOrderQueryResponse{}, errs.NewAccessDeniedError("view travel order")
	}

	return TravelOrderQueryResponse{
		ID:            travelOrder.ID(),
		OwnerID:       travelOrder.OwnerID(),
		RequesterName: travelOrder.RequesterName(),
		Origin:        travelOrder.Origin(),
		Destination:   travelOrder.Destination(),
		StartDate:     travelOrder.Period().Start(),
		EndDate:       travelOrder.Period().End(),
		Status:        travelOrder.Status(),
		CreatedAt:     travelOrder.CreatedAt(),
	}, nil
}
