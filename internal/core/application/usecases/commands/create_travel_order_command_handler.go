package commands

import (
	"context"
	"time"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
)

// CreateTravelOrderCommandHandler handles the business logic for order submission.
// Creates new orders in "requested" status, owned by the submitting principal.
//
// Example:
//
//	handler := NewCreateTravelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateTravelOrderCommand(principal, "Ada Lovelace", "London", "Paris", period)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("travel order creation failed: %w", err)
//	}
//	// created is now persisted and awaits an administrator's decision
type CreateTravelOrderCommandHandler struct {
	uowFactory TravelOrderUoWFactory
}

// NewCreateTravelOrderCommandHandler creates a handler for order submission.
// Requires a TravelOrderUoWFactory for transactional persistence.
func NewCreateTravelOrderCommandHandler(uowFactory TravelOrderUoWFactory) CreateTravelOrderCommandHandler {
	return CreateTravelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Assigns a fresh identifier, stamps the creation time, and persists the
// order in "requested" status within a transaction. Returns the stored order.
func (h *CreateTravelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTravelOrderCommand,
) (*order.TravelOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	travelOrder, err := order.NewTravelOrder(
		kernel.NewUUID(),
		cmd.Principal().ID(),
		cmd.RequesterName(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Period(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TravelOrderRepository().Add(ctx, travelOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return travelOrder, nil
}
