package queries

import (
	"context"
	"strings"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTravelOrdersQueryHandler lists a principal's travel orders from the
// database. Uses direct SQL for the read side of the CQRS split; the result
// is a page of read models, never domain aggregates.
type ListTravelOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListTravelOrdersQueryHandler creates a handler for listing queries.
// Requires a GORM database connection for query execution.
func NewListTravelOrdersQueryHandler(db *gorm.DB) ListTravelOrdersQueryHandler {
	return ListTravelOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are scoped to the principal's own orders, filtered per the query,
// ordered by creation time descending and paginated with a fixed page size.
func (h ListTravelOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListTravelOrdersQuery,
) (ListTravelOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	conditions := []string{"owner_id = ?"}
	args := []any{query.Principal().ID().String()}

	filter := query.Filter()
	if filter.Status != order.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Destination != "" {
		conditions = append(conditions, "destination ILIKE ?")
		args = append(args, "%"+filter.Destination+"%")
	}
	if !filter.StartFrom.IsZero() {
		conditions = append(conditions, "start_date >= ?")
		args = append(args, filter.StartFrom)
	}
	if !filter.EndUntil.IsZero() {
		conditions = append(conditions, "end_date <= ?")
		args = append(args, filter.EndUntil)
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM travel_orders WHERE "+where, args...).
		Scan(&totalCount).Error
	if err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * travelOrdersPageSize

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, travelOrdersPageSize, offset)...).Rows()
	if err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]TravelOrderQueryResponse, 0)

	for rows.Next() {
		var orderResp TravelOrderQueryResponse
		var id, ownerID uuid.UUID
		var startDate, endDate time.Time
		var status int

		err = rows.Scan(
			&id,
			&ownerID,
			&orderResp.RequesterName,
			&orderResp.Origin,
			&orderResp.Destination,
			&startDate,
			&endDate,
			&status,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return ListTravelOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListTravelOrdersQueryResponse{}, idErr
		}
		orderResp.ID = orderID

		ownerUUID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return ListTravelOrdersQueryResponse{}, idErr
		}
		orderResp.OwnerID = ownerUUID

		orderResp.StartDate = startDate
		orderResp.EndDate = endDate
		orderResp.Status = order.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	return ListTravelOrdersQueryResponse{
		Orders:     orders,
		Page:       query.Page(),
		PageSize:   travelOrdersPageSize,
		TotalCount: totalCount,
	}, nil
}
