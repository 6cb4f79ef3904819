package commands

import (
	"errors"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/pkg/errs"
	"travelorder/internal/pkg/guard"
)

var (
	ErrUpdateTravelOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateTravelOrderStatusCommand must be created via NewUpdateTravelOrderStatusCommand constructor",
	)
)

// UpdateTravelOrderStatusCommand represents a request to change the status of
// an existing travel order. Only administrators may perform this operation;
// the authorization check itself happens in the handler, where the target
// order is available.
//
// Example:
//
//	cmd, err := NewUpdateTravelOrderStatusCommand(adminPrincipal, orderID, order.Approved)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrTransitionNotAllowed) {
//	    // The state machine rejected the change
//	}
type UpdateTravelOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateTravelOrderStatusCommand creates a command to change an order's status.
//
// The principal must be a resolved, authenticated actor (zero value yields an
// UnauthenticatedError), the order id must be valid, and newStatus must be a
// member of the status enum. Callers translating wire strings should use
// order.StatusFromString first so out-of-enum values are rejected before this
// constructor runs.
func NewUpdateTravelOrderStatusCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	newStatus order.Status,
) (UpdateTravelOrderStatusCommand, error) {
	if err := principal.Validate(); err != nil {
		return UpdateTravelOrderStatusCommand{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	statusCommand := UpdateTravelOrderStatusCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateTravelOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateTravelOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateTravelOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTravelOrderStatusCommandIsNotConstructed)
}

// Principal returns the authenticated actor requesting the change.
func (c UpdateTravelOrderStatusCommand) Principal() auth.Principal {
	return c.principal
}

// OrderID returns the identifier of the order to change.
func (c UpdateTravelOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateTravelOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateTravelOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTravelOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
