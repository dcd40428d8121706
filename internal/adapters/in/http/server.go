// Package http is the inbound HTTP adapter. It binds echo routes to command
// and query handlers, translating between JSON payloads and domain types.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/application/usecases/queries"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	checkInHandler     commands.CheckInCommandHandler
	checkOutHandler    commands.CheckOutCommandHandler

	listOrdersHandler  queries.ListOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	trackOrderHandler  queries.TrackOrderQueryHandler
	listShiftsHandler  queries.ListShiftsQueryHandler
	orderRouteHandler  queries.GetOrderRouteQueryHandler
	performanceHandler queries.PerformanceStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	checkInHandler commands.CheckInCommandHandler,
	checkOutHandler commands.CheckOutCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	listShiftsHandler queries.ListShiftsQueryHandler,
	orderRouteHandler queries.GetOrderRouteQueryHandler,
	performanceHandler queries.PerformanceStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		checkInHandler:     checkInHandler,
		checkOutHandler:    checkOutHandler,
		listOrdersHandler:  listOrdersHandler,
		getOrderHandler:    getOrderHandler,
		trackOrderHandler:  trackOrderHandler,
		listShiftsHandler:  listShiftsHandler,
		orderRouteHandler:  orderRouteHandler,
		performanceHandler: performanceHandler,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Everything under
// /api requires identity headers; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api", PrincipalMiddleware())
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.GET("/orders/:id/route", s.GetOrderRoute)
	api.GET("/attendance", s.ListShifts)
	api.POST("/attendance", s.Attendance)
	api.GET("/track", s.TrackOrder)
	api.GET("/performance", s.PerformanceStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter := queries.ListOrdersFilter{
		Search: ctx.QueryParam("search"),
		Sort:   ctx.QueryParam("sort"),
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("assigned_to"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.AssignedTo = &id
	}

	query, err := queries.NewListOrdersQuery(principalFrom(ctx), filter)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(views))
	for i, view := range views {
		response[i] = responseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	assignee, err := userRefFromPayload(req.AssignedTo)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.Code, details, assignee, principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, responseFromOrder(created))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseFromView(view))
}

// UpdateOrder handles PATCH /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	patch, err := patchFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, patch, principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseFromOrder(updated))
}

// GetOrderRoute handles GET /api/orders/:id/route.
func (s *Server) GetOrderRoute(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderRouteQuery(orderID, principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	route, err := s.orderRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeResponse{
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Geometry:        route.Geometry,
	})
}

// ListShifts handles GET /api/attendance.
func (s *Server) ListShifts(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer",
			})
		}
		limit = parsed
	}

	query, err := queries.NewListShiftsQuery(principalFrom(ctx).ID(), limit)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listShiftsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shiftResponse, len(views))
	for i, view := range views {
		response[i] = responseFromShiftView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Attendance handles POST /api/attendance with {"action": "in"|"out"}.
func (s *Server) Attendance(ctx echo.Context) error {
	var req attendanceRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	switch req.Action {
	case "in":
		return s.checkIn(ctx, req)
	case "out":
		return s.checkOut(ctx)
	default:
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: `action must be "in" or "out"`,
		})
	}
}

func (s *Server) checkIn(ctx echo.Context, req attendanceRequest) error {
	var orderID *kernel.UUID
	if req.OrderID != nil {
		id, err := kernel.UUIDFromString(*req.OrderID)
		if err != nil {
			return writeError(ctx, err)
		}
		orderID = &id
	}

	cmd, err := commands.NewCheckInCommand(kernel.NewUUID(), principalFrom(ctx).ID(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	shift, err := s.checkInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shiftResponseFromDomain(shift))
}

func (s *Server) checkOut(ctx echo.Context) error {
	cmd, err := commands.NewCheckOutCommand(principalFrom(ctx).ID())
	if err != nil {
		return writeError(ctx, err)
	}

	shift, err := s.checkOutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shiftResponseFromDomain(shift))
}

// TrackOrder handles GET /api/track?code=.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.QueryParam("code"), principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackResponse{
		Code:               summary.Code,
		Status:             summary.Status.String(),
		CustomerName:       summary.CustomerName,
		AssignedToUsername: summary.AssignedToUsername,
		UpdatedAt:          summary.UpdatedAt,
	})
}

// PerformanceStats handles GET /api/performance?from=&to=.
func (s *Server) PerformanceStats(ctx echo.Context) error {
	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return writeError(ctx, err)
	}

	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewPerformanceStatsQuery(principalFrom(ctx).ID(), from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.performanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, performanceResponse{
		CourierID:     stats.CourierID.String(),
		From:          stats.From,
		To:            stats.To,
		TotalOrders:   stats.TotalOrders,
		DoneOrders:    stats.DoneOrders,
		CODCollected:  stats.CODCollected,
		WorkedHours:   stats.WorkedHours,
		OrdersPerHour: stats.OrdersPerHour,
	})
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("time must be RFC3339", err)
	}

	return parsed, nil
}
