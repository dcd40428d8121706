package queries

import (
	"context"

	"gorm.io/gorm"

	"deliverysys/internal/core/ports"
	"deliverysys/internal/pkg/errs"
)

// GetOrderRouteQueryHandler resolves an order's coordinates and asks the
// routing service for the driving route between them. Orders without a full
// pickup and drop-off pair are rejected before any upstream call is made.
type GetOrderRouteQueryHandler struct {
	db     *gorm.DB
	router ports.RouteClient
}

// NewGetOrderRouteQueryHandler creates a handler for order route queries.
func NewGetOrderRouteQueryHandler(db *gorm.DB, router ports.RouteClient) GetOrderRouteQueryHandler {
	return GetOrderRouteQueryHandler{db: db, router: router}
}

// Handle fetches the order, checks visibility and coordinates, then routes.
func (h GetOrderRouteQueryHandler) Handle(ctx context.Context, query GetOrderRouteQuery) (*ports.Route, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := fetchOrderByID(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !found.ViewableBy(query.Principal()) {
		return nil, errs.NewForbiddenError("order is not visible to this user")
	}

	pickup, drop, err := found.RouteEndpoints()
	if err != nil {
		return nil, err
	}

	return h.router.GetRoute(ctx, pickup, drop)
}
