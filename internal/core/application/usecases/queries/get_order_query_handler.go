package queries

import (
	"context"

	"gorm.io/gorm"

	"deliverysys/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order by ID. A principal the order is
// not visible to gets a ForbiddenError rather than a not-found, since the
// identifier was explicitly requested.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order and checks visibility.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	found, err := fetchOrderByID(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	if !found.ViewableBy(query.Principal()) {
		return OrderView{}, errs.NewForbiddenError("order is not visible to this user")
	}

	return orderViewFrom(found), nil
}
