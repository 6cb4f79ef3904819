package ports

import (
	"context"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
)

// TravelOrderRepository defines the persistence contract for travel-order
// aggregates. Implementations must provide per-order atomicity for status
// changes via the expected-status compare-and-swap in Update.
type TravelOrderRepository interface {
	// Add persists a new travel-order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.TravelOrder) error

	// Update persists changes to an existing travel-order aggregate.
	//
	// expectedStatus is the status the caller observed before mutating the
	// aggregate; the write only applies if the stored status still matches.
	// Returns an error unwrapping errs.ErrVersionIsInvalid when the stored
	// status changed concurrently, and errs.ErrObjectNotFound when no row
	// with the aggregate's id exists.
	Update(ctx context.Context, aggregate *order.TravelOrder, expectedStatus order.Status) error

	// Get retrieves a travel-order aggregate by its unique identifier.
	// Returns an error unwrapping errs.ErrObjectNotFound for unresolved ids.
	Get(ctx context.Context, id kernel.UUID) (*order.TravelOrder, error)

	// GetAllRequestedStartingBefore retrieves all orders still in Requested
	// status whose travel window starts strictly before the day containing
	// the given moment; a same-day start is not yet stale. Used by the
	// expiry job to cancel stale requests.
	GetAllRequestedStartingBefore(ctx context.Context, day time.Time) ([]*order.TravelOrder, error)
}
