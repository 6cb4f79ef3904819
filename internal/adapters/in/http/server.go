package http

import (
	"errors"
	"net/http"

	"travelorder/internal/core/application/usecases/commands"
	"travelorder/internal/core/application/usecases/queries"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/generated/servers"
	"travelorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTravelOrderHandler commands.CreateTravelOrderCommandHandler
	updateStatusHandler      commands.UpdateTravelOrderStatusCommandHandler

	// Query handlers
	getTravelOrderHandler   queries.GetTravelOrderQueryHandler
	listTravelOrdersHandler queries.ListTravelOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTravelOrderHandler commands.CreateTravelOrderCommandHandler,
	updateStatusHandler commands.UpdateTravelOrderStatusCommandHandler,
	getTravelOrderHandler queries.GetTravelOrderQueryHandler,
	listTravelOrdersHandler queries.ListTravelOrdersQueryHandler,
) *Server {
	return &Server{
		createTravelOrderHandler: createTravelOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		getTravelOrderHandler:    getTravelOrderHandler,
		listTravelOrdersHandler:  listTravelOrdersHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateTravelOrder handles POST /api/v1/travel-orders - submits a new travel order.
func (s *Server) CreateTravelOrder(ctx echo.Context) error {
	principal, err := PrincipalFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.CreateTravelOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	period, err := kernel.NewPeriod(body.StartDate.Time, body.EndDate.Time)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var requesterName, origin string
	if body.RequesterName != nil {
		requesterName = *body.RequesterName
	}
	if body.Origin != nil {
		origin = *body.Origin
	}

	cmd, err := commands.NewCreateTravelOrderCommand(principal, requesterName, origin, body.Destination, period)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createTravelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, travelOrderFromDomain(created))
}

// UpdateTravelOrderStatus handles PATCH /api/v1/travel-orders/{id}/status -
// applies an administrator decision to an order.
//
// The status string is parsed before any access or transition check runs, so
// an illegal value is always a 400 regardless of who asks or which order is
// addressed.
func (s *Server) UpdateTravelOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	principal, err := PrincipalFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.UpdateTravelOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateTravelOrderStatusCommand(principal, orderID, newStatus)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, travelOrderFromDomain(updated))
}

// GetTravelOrderById handles GET /api/v1/travel-orders/{id} - retrieves one order.
func (s *Server) GetTravelOrderById(ctx echo.Context, id openapi_types.UUID) error {
	principal, err := PrincipalFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetTravelOrderQuery(principal, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getTravelOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, travelOrderFromReadModel(result))
}

// ListTravelOrders handles GET /api/v1/travel-orders - lists the principal's orders.
func (s *Server) ListTravelOrders(ctx echo.Context, params servers.ListTravelOrdersParams) error {
	principal, err := PrincipalFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var filter queries.ListTravelOrdersFilter
	if params.Status != nil {
		status, statusErr := order.StatusFromString(string(*params.Status))
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		filter.Status = status
	}
	if params.Destination != nil {
		filter.Destination = *params.Destination
	}
	if params.StartDate != nil {
		filter.StartFrom = params.StartDate.Time
	}
	if params.EndDate != nil {
		filter.EndUntil = params.EndDate.Time
	}
	if params.Page != nil {
		filter.Page = *params.Page
	}

	query, err := queries.NewListTravelOrdersQuery(principal, filter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.listTravelOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.TravelOrderList{
		Data:     make([]servers.TravelOrder, len(result.Orders)),
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.TotalCount,
	}
	for i, item := range result.Orders {
		response.Data[i] = travelOrderFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// statusCodeFor maps domain errors to HTTP status codes.
//
// The mapping keeps the error kinds distinguishable at the API boundary:
// a denied view is never reported as missing, and a rejected transition is
// never reported as a malformed request.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrTransitionNotAllowed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the JSON error body for a failed request.
// Unclassified errors are reported without their message to avoid leaking
// storage details.
func errorResponse(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// travelOrderFromDomain converts an aggregate to its API representation.
func travelOrderFromDomain(travelOrder *order.TravelOrder) servers.TravelOrder {
	response := servers.TravelOrder{
		Id:            travelOrder.ID().Bytes(),
		OwnerId:       travelOrder.OwnerID().Bytes(),
		RequesterName: travelOrder.RequesterName(),
		Destination:   travelOrder.Destination(),
		StartDate:     openapi_types.Date{Time: travelOrder.Period().Start()},
		EndDate:       openapi_types.Date{Time: travelOrder.Period().End()},
		Status:        servers.TravelOrderStatus(travelOrder.Status().String()),
		CreatedAt:     travelOrder.CreatedAt(),
	}
	if origin := travelOrder.Origin(); origin != "" {
		response.Origin = &origin
	}
	return response
}

// travelOrderFromReadModel converts a query read model to its API representation.
func travelOrderFromReadModel(item queries.TravelOrderQueryResponse) servers.TravelOrder {
	response := servers.TravelOrder{
		Id:            item.ID.Bytes(),
		OwnerId:       item.OwnerID.Bytes(),
		RequesterName: item.RequesterName,
		Destination:   item.Destination,
		StartDate:     openapi_types.Date{Time: item.StartDate},
		EndDate:       openapi_types.Date{Time: item.EndDate},
		Status:        servers.TravelOrderStatus(item.Status.String()),
		CreatedAt:     item.CreatedAt,
	}
	if item.Origin != "" {
		response.Origin = &item.Origin
	}
	return response
}
