package queries

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery
// was not created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier, subject to the
// requesting principal's visibility.
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID, principal kernel.Principal) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), principal.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the requesting principal.
func (q GetOrderQuery) Principal() kernel.Principal {
	return q.principal
}
