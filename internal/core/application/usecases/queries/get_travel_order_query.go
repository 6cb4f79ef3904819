package queries

import (
	"errors"
	"time"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/pkg/errs"
	"travelorder/internal/pkg/guard"
)

var (
	ErrGetTravelOrderQueryIsNotConstructed = errors.New(
		"GetTravelOrderQuery must be created via NewGetTravelOrderQuery constructor",
	)
)

// GetTravelOrderQuery retrieves a single travel order by identifier on behalf
// of a principal. Visibility is decided by the access policy in the handler:
// owners see their own orders, administrators see every order, everyone else
// gets an access-denied error rather than a not-found.
//
// Example:
//
//	query, err := NewGetTravelOrderQuery(principal, orderID)
//	if err != nil {
//	    return err
//	}
//
//	travelOrder, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get travel order: %w", err)
//	}
//
//	fmt.Printf("%s -> %s, %s\n",
//	    travelOrder.Origin, travelOrder.Destination, travelOrder.Status)
type GetTravelOrderQuery struct {
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTravelOrderQuery creates a query for a single travel order.
// A zero-value principal is reported as unauthenticated; the order
// identifier is required.
func NewGetTravelOrderQuery(principal auth.Principal, orderID kernel.UUID) (GetTravelOrderQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetTravelOrderQuery{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	if err := orderID.Validate(); err != nil {
		return GetTravelOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetTravelOrderQuery{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the principal the query runs on behalf of.
func (q GetTravelOrderQuery) Principal() auth.Principal {
	return q.principal
}

// OrderID returns the identifier of the requested travel order.
func (q GetTravelOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTravelOrderQueryIsNotConstructed if validation fails.
func (q GetTravelOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTravelOrderQueryIsNotConstructed)
}

// TravelOrderQueryResponse is the travel-order read model shared by the
// single-order and listing queries.
type TravelOrderQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	RequesterName string
	Origin        string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Status        order.Status
	CreatedAt     time.Time
}
