package services

import (
	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/order"
)

// AccessPolicy is a domain service deciding whether a principal may view or
// mutate a given travel order.
//
// Business rules:
//   - An order is visible to its owner and to administrators
//   - Only administrators change order status; ownership alone is not enough,
//     so requesters cannot self-approve or self-cancel once submitted
//
// Both checks are pure predicates with no I/O. Callers translate a false
// result into an access-denied error; the policy itself never fails.
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if !policy.CanUpdateStatus(principal, travelOrder) {
//	    return errs.NewAccessDeniedError("update travel order status")
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView reports whether the principal may read the given order.
// True iff the principal owns the order or is an administrator.
func (AccessPolicy) CanView(principal auth.Principal, travelOrder *order.TravelOrder) bool {
	if principal.Validate() != nil || travelOrder.Validate() != nil {
		return false
	}

	return principal.ID().IsEqual(travelOrder.OwnerID()) || principal.IsAdmin()
}

// CanUpdateStatus reports whether the principal may change the order's status.
// True iff the principal is an administrator.
func (AccessPolicy) CanUpdateStatus(principal auth.Principal, travelOrder *order.TravelOrder) bool {
	if principal.Validate() != nil || travelOrder.Validate() != nil {
		return false
	}

	return principal.IsAdmin()
}
