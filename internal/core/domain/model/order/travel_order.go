package order

import (
	"errors"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/pkg/errs"
)

var (
	// ErrTravelOrderIsNotConstructed is returned when a TravelOrder instance was not created
	// through the NewTravelOrder or RestoreTravelOrder factory methods.
	ErrTravelOrderIsNotConstructed = errors.New(
		"TravelOrder must be created via NewTravelOrder or RestoreTravelOrder constructor")
)

// TravelOrder represents a travel request in the system. It is the aggregate
// root that manages the order lifecycle from submission through approval or
// cancellation.
//
// TravelOrder follows these invariants:
//   - Must have a valid unique identifier and a valid owner identifier
//   - The owner never changes after creation
//   - Requester name and destination are required; origin is free text
//   - Status transitions follow the Status state machine exclusively
//   - Can only be created through NewTravelOrder or RestoreTravelOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type TravelOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the principal who submitted the order
	ownerID kernel.UUID

	// requesterName is the person traveling, as entered by the requester
	requesterName string

	// origin is the departure location (optional free text)
	origin string

	// destination is the travel destination
	destination string

	// period is the travel window
	period kernel.Period

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the submission timestamp, used for default ordering
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewTravelOrder creates a new TravelOrder with validation. This is the only
// way to create an order in its initial state, ensuring all business
// invariants hold.
//
// The order starts in Requested status, owned by ownerID, with createdAt as
// its submission timestamp. Returns a validation error if any parameter is
// invalid.
//
// Example:
//
//	order, err := order.NewTravelOrder(
//	    kernel.NewUUID(), principal.ID(),
//	    "Ada Lovelace", "London", "Paris", period, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewTravelOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	origin string,
	destination string,
	period kernel.Period,
	createdAt time.Time,
) (*TravelOrder, error) {
	travelOrder := &TravelOrder{
		status:        Requested,
		origin:        origin,
		isConstructed: true,
	}

	if err := errors.Join(
		travelOrder.setID(id),
		travelOrder.setOwnerID(ownerID),
		travelOrder.setRequesterName(requesterName),
		travelOrder.setDestination(destination),
		travelOrder.setPeriod(period),
		travelOrder.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return travelOrder, nil
}

// RestoreTravelOrder reconstructs a TravelOrder from persistence.
// Unlike NewTravelOrder it accepts an arbitrary valid status and does not
// reset the lifecycle. Used only by repository implementations.
func RestoreTravelOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	origin string,
	destination string,
	period kernel.Period,
	status Status,
	createdAt time.Time,
) (*TravelOrder, error) {
	travelOrder := &TravelOrder{
		origin:        origin,
		isConstructed: true,
	}

	if err := errors.Join(
		travelOrder.setID(id),
		travelOrder.setOwnerID(ownerID),
		travelOrder.setRequesterName(requesterName),
		travelOrder.setDestination(destination),
		travelOrder.setPeriod(period),
		travelOrder.setStatus(status),
		travelOrder.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return travelOrder, nil
}

// Validate ensures the TravelOrder was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *TravelOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTravelOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *TravelOrder) IsEqual(other *TravelOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *TravelOrder) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the principal who submitted the order.
// The owner never changes over the order's lifetime.
func (o *TravelOrder) OwnerID() kernel.UUID {
	return o.ownerID
}

// RequesterName returns the name of the person traveling.
func (o *TravelOrder) RequesterName() string {
	return o.requesterName
}

// Origin returns the departure location. May be empty.
func (o *TravelOrder) Origin() string {
	return o.origin
}

// Destination returns the travel destination.
func (o *TravelOrder) Destination() string {
	return o.destination
}

// Period returns the travel window.
func (o *TravelOrder) Period() kernel.Period {
	return o.period
}

// Status returns the current status of the order.
func (o *TravelOrder) Status() Status {
	return o.status
}

// CreatedAt returns the submission timestamp.
func (o *TravelOrder) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the next status.
//
// The transition is validated by the Status state machine; an illegal
// transition leaves the order unchanged and returns a
// *TransitionNotAllowedError carrying the attempted pair.
//
// Example:
//
//	if err := order.ChangeStatus(order.Approved); err != nil {
//	    // Transition rejected, status unchanged
//	}
func (o *TravelOrder) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *TravelOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning principal's identifier.
// This is a private method used only during construction.
func (o *TravelOrder) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *TravelOrder) setRequesterName(requesterName string) error {
	if requesterName == "" {
		return errs.NewValueIsRequiredError("requesterName")
	}
	o.requesterName = requesterName
	return nil
}

func (o *TravelOrder) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *TravelOrder) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}

func (o *TravelOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *TravelOrder) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
