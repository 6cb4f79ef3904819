package commands

import (
	"context"
	"errors"

	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/core/domain/services"
	"travelorder/internal/pkg/errs"
)

// maxStatusUpdateAttempts bounds the optimistic-concurrency retry loop.
// A conflict means another writer changed the status between our read and
// write; after a re-read the transition is re-evaluated against fresh state.
const maxStatusUpdateAttempts = 3

// UpdateTravelOrderStatusCommandHandler handles administrator decisions on
// travel orders: approval and cancellation.
//
// The handler enforces, in order:
//  1. the order exists (errs.ErrObjectNotFound otherwise)
//  2. the principal may change status (errs.ErrAccessDenied otherwise)
//  3. the transition is legal (order.ErrTransitionNotAllowed otherwise)
//
// Persistence uses an expected-status compare-and-swap so that two concurrent
// updates on the same order serialize: exactly one wins, the other observes
// the transition check against the post-update state.
type UpdateTravelOrderStatusCommandHandler struct {
	accessPolicy services.AccessPolicy
	uowFactory   TravelOrderUoWFactory
}

// NewUpdateTravelOrderStatusCommandHandler creates a handler for status updates.
// Requires the access policy and a TravelOrderUoWFactory for transactional persistence.
func NewUpdateTravelOrderStatusCommandHandler(
	accessPolicy services.AccessPolicy,
	uowFactory TravelOrderUoWFactory,
) UpdateTravelOrderStatusCommandHandler {
	return UpdateTravelOrderStatusCommandHandler{
		accessPolicy: accessPolicy,
		uowFactory:   uowFactory,
	}
}

// Handle processes the status-update command and returns the updated order.
//
// On an optimistic-concurrency conflict the handler re-reads the order and
// re-evaluates the transition from the fresh status, so a losing writer gets
// a TransitionNotAllowedError naming the state it actually lost to rather
// than a bare conflict.
func (h *UpdateTravelOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTravelOrderStatusCommand,
) (*order.TravelOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TravelOrderRepository()

	var travelOrder *order.TravelOrder
	for attempt := 0; ; attempt++ {
		var err error
		travelOrder, err = repo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}

		if !h.accessPolicy.CanUpdateStatus(cmd.Principal(), travelOrder) {
			return nil, errs.NewAccessDeniedError("update travel order status")
		}

		expectedStatus := travelOrder.Status()
		if err = travelOrder.ChangeStatus(cmd.NewStatus()); err != nil {
			return nil, err
		}

		err = repo.Update(ctx, travelOrder, expectedStatus)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) || attempt+1 >= maxStatusUpdateAttempts {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return travelOrder, nil
}
