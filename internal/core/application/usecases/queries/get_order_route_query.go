package queries

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/guard"
)

// ErrGetOrderRouteQueryIsNotConstructed is returned when a GetOrderRouteQuery
// was not created via NewGetOrderRouteQuery.
var ErrGetOrderRouteQueryIsNotConstructed = errors.New(
	"GetOrderRouteQuery must be created via NewGetOrderRouteQuery constructor",
)

// GetOrderRouteQuery computes the driving route between an order's pickup
// and drop-off coordinates.
type GetOrderRouteQuery struct {
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderRouteQuery creates a route query for one order.
func NewGetOrderRouteQuery(orderID kernel.UUID, principal kernel.Principal) (GetOrderRouteQuery, error) {
	if err := errors.Join(orderID.Validate(), principal.Validate()); err != nil {
		return GetOrderRouteQuery{}, err
	}

	return GetOrderRouteQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRouteQueryIsNotConstructed)
}

// OrderID returns the order to route.
func (q GetOrderRouteQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the requesting principal.
func (q GetOrderRouteQuery) Principal() kernel.Principal {
	return q.principal
}
