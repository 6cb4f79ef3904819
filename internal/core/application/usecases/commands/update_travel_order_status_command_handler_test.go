package commands_test

import (
	"testing"
	"time"

	"travelorder/internal/core/application/usecases/commands"
	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/core/domain/services"
	"travelorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatusUpdateHandler(factory *MockTravelOrderUoWFactory) commands.UpdateTravelOrderStatusCommandHandler {
	return commands.NewUpdateTravelOrderStatusCommandHandler(services.NewAccessPolicy(), factory)
}

func restoredOrder(t *testing.T, ownerID kernel.UUID, status order.Status) *order.TravelOrder {
	t.Helper()
	start := time.Now().AddDate(0, 1, 0)
	period, err := kernel.NewPeriod(start, start.AddDate(0, 0, 5))
	require.NoError(t, err)

	travelOrder, err := order.RestoreTravelOrder(
		kernel.NewUUID(), ownerID, "Ada Lovelace", "London", "Paris", period, status, time.Now())
	require.NoError(t, err)
	return travelOrder
}

func TestUpdateTravelOrderStatusCommandHandler_Handle_ApproveRequested(t *testing.T) {
	ctx := t.Context()
	travelOrder := restoredOrder(t, kernel.NewUUID(), order.Requested)
	cmd, err := commands.NewUpdateTravelOrderStatusCommand(adminPrincipal(t), travelOrder.ID(), order.Approved)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, travelOrder.ID()).Return(travelOrder, nil).Once(),
		repo.On("Update", mock.Anything, travelOrder, order.Requested).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Approved, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateTravelOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateTravelOrderStatusCommand(adminPrincipal(t), orderID, order.Approved)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("travelOrder", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateTravelOrderStatusCommandHandler_Handle_OwnerIsDenied(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owner, err := auth.NewPrincipal(ownerID, "Owner", false)
	require.NoError(t, err)
	travelOrder := restoredOrder(t, ownerID, order.Requested)

	cmd, err := commands.NewUpdateTravelOrderStatusCommand(owner, travelOrder.ID(), order.Approved)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, travelOrder.ID()).Return(travelOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, order.Requested, travelOrder.Status())
}

func TestUpdateTravelOrderStatusCommandHandler_Handle_ApprovedCannotBeCanceled(t *testing.T) {
	ctx := t.Context()
	travelOrder := restoredOrder(t, kernel.NewUUID(), order.Approved)
	cmd, err := commands.NewUpdateTravelOrderStatusCommand(adminPrincipal(t), travelOrder.ID(), order.Canceled)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, travelOrder.ID()).Return(travelOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)

	var transitionErr *order.TransitionNotAllowedError
	require.ErrorAs(t, err, &transitionErr)
	require.Equal(t, order.Approved, transitionErr.From)
	require.Equal(t, order.Canceled, transitionErr.To)
	require.Equal(t, order.Approved, travelOrder.Status())
}

// TestUpdateTravelOrderStatusCommandHandler_Handle_LosesConcurrentRace models
// two racing updates: this handler reads the order in requested status, loses
// the compare-and-swap to a concurrent approval, re-reads, and must then
// reject canceled against the fresh approved state.
func TestUpdateTravelOrderStatusCommandHandler_Handle_LosesConcurrentRace(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	staleRead := restoredOrder(t, ownerID, order.Requested)
	freshRead, err := order.RestoreTravelOrder(
		staleRead.ID(), ownerID, "Ada Lovelace", "London", "Paris",
		staleRead.Period(), order.Approved, staleRead.CreatedAt())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateTravelOrderStatusCommand(adminPrincipal(t), staleRead.ID(), order.Canceled)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, staleRead.ID()).Return(staleRead, nil).Once(),
		repo.On("Update", mock.Anything, staleRead, order.Requested).
			Return(errs.NewVersionIsInvalidErrorWithCause("status")).Once(),
		repo.On("Get", mock.Anything, staleRead.ID()).Return(freshRead, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)

	var transitionErr *order.TransitionNotAllowedError
	require.ErrorAs(t, err, &transitionErr)
	require.Equal(t, order.Approved, transitionErr.From)
	repo.AssertExpectations(t)
}

// TestUpdateTravelOrderStatusCommandHandler_Handle_StopsAfterThreeConflicts
// keeps losing the compare-and-swap on every read: the handler performs
// exactly three write attempts before surfacing the conflict.
func TestUpdateTravelOrderStatusCommandHandler_Handle_StopsAfterThreeConflicts(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	first := restoredOrder(t, ownerID, order.Requested)

	reads := []*order.TravelOrder{first}
	for i := 0; i < 2; i++ {
		reread, err := order.RestoreTravelOrder(
			first.ID(), ownerID, "Ada Lovelace", "London", "Paris",
			first.Period(), order.Requested, first.CreatedAt())
		require.NoError(t, err)
		reads = append(reads, reread)
	}

	cmd, err := commands.NewUpdateTravelOrderStatusCommand(adminPrincipal(t), first.ID(), order.Approved)
	require.NoError(t, err)

	repo := new(MockTravelOrderRepository)
	uow := new(MockTravelOrderUoW)

	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelOrderRepository").Return(repo).Once(),
	}
	for _, read := range reads {
		calls = append(calls,
			repo.On("Get", mock.Anything, first.ID()).Return(read, nil).Once(),
			repo.On("Update", mock.Anything, read, order.Requested).
				Return(errs.NewVersionIsInvalidErrorWithCause("status")).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)

	factory := new(MockTravelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusUpdateHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	repo.AssertNumberOfCalls(t, "Update", 3)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
