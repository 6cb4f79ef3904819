package commands

import (
	"context"
	"errors"
	"time"

	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/pkg/errs"
)

// CancelExpiredTravelOrdersCommandHandler cancels orders whose travel window
// started before today while they were still awaiting a decision. The
// requested -> canceled transition is a legal move in the state machine, so
// this handler needs no special-case bypass.
type CancelExpiredTravelOrdersCommandHandler struct {
	uowFactory TravelOrderUoWFactory
}

// NewCancelExpiredTravelOrdersCommandHandler creates a handler for the expiry sweep.
func NewCancelExpiredTravelOrdersCommandHandler(
	uowFactory TravelOrderUoWFactory,
) CancelExpiredTravelOrdersCommandHandler {
	return CancelExpiredTravelOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every stale requested order and returns how many were canceled.
//
// Orders that lose the compare-and-swap to a concurrent administrator
// decision are skipped rather than failing the sweep; they are no longer in
// requested status and will not match the next sweep either.
func (h *CancelExpiredTravelOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelExpiredTravelOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TravelOrderRepository()
	staleOrders, err := repo.GetAllRequestedStartingBefore(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	canceled := 0
	for _, staleOrder := range staleOrders {
		expectedStatus := staleOrder.Status()
		if err = staleOrder.ChangeStatus(order.Canceled); err != nil {
			return canceled, err
		}

		err = repo.Update(ctx, staleOrder, expectedStatus)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			continue
		}
		if err != nil {
			return canceled, err
		}
		canceled++
	}

	if err = uow.Commit(ctx); err != nil {
		return canceled, err
	}

	return canceled, nil
}
