package queries

import (
	"errors"
	"time"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/pkg/errs"
	"travelorder/internal/pkg/guard"
)

// travelOrdersPageSize is the fixed page size of the listing query.
const travelOrdersPageSize = 10

var (
	ErrListTravelOrdersQueryIsNotConstructed = errors.New(
		"ListTravelOrdersQuery must be created via NewListTravelOrdersQuery constructor",
	)
)

// ListTravelOrdersFilter narrows the listing query. Every field is optional;
// a zero value disables the corresponding filter.
type ListTravelOrdersFilter struct {
	// Status keeps only orders in this exact status. order.Unknown disables the filter.
	Status order.Status
	// Destination keeps orders whose destination contains this substring,
	// case-insensitively.
	Destination string
	// StartFrom keeps orders whose travel window starts on or after this day.
	StartFrom time.Time
	// EndUntil keeps orders whose travel window ends on or before this day.
	EndUntil time.Time
	// Page is the 1-based page number; zero means the first page.
	Page int
}

// ListTravelOrdersQuery lists the travel orders owned by a principal, newest
// first, with optional filters on status, destination and travel window.
//
// The listing is always scoped to the principal's own orders; administrators
// inspect other requesters' orders individually through GetTravelOrderQuery.
type ListTravelOrdersQuery struct {
	principal auth.Principal
	filter    ListTravelOrdersFilter
	page      int

	guard guard.ConstructorGuard
}

// NewListTravelOrdersQuery creates a listing query for the principal's orders.
// A zero-value principal is reported as unauthenticated; a status filter
// outside the known set and a negative page number are rejected.
func NewListTravelOrdersQuery(
	principal auth.Principal,
	filter ListTravelOrdersFilter,
) (ListTravelOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListTravelOrdersQuery{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	if filter.Status != order.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListTravelOrdersQuery{}, err
		}
	}

	if filter.Page < 0 {
		return ListTravelOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}

	return ListTravelOrdersQuery{
		principal: principal,
		filter:    filter,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the principal whose orders are listed.
func (q ListTravelOrdersQuery) Principal() auth.Principal {
	return q.principal
}

// Filter returns the optional narrowing criteria.
func (q ListTravelOrdersQuery) Filter() ListTravelOrdersFilter {
	return q.filter
}

// Page returns the normalized 1-based page number.
func (q ListTravelOrdersQuery) Page() int {
	return q.page
}

// Validate ensures the query was created through the constructor.
// Returns ErrListTravelOrdersQueryIsNotConstructed if validation fails.
func (q ListTravelOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTravelOrdersQueryIsNotConstructed)
}

// ListTravelOrdersQueryResponse is one page of the principal's travel orders.
type ListTravelOrdersQueryResponse struct {
	Orders     []TravelOrderQueryResponse
	Page       int
	PageSize   int
	TotalCount int64
}
