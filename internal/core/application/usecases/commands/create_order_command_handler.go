package commands

import (
	"context"
	"errors"

	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// A duplicate order code fails with a ConflictError: the repository converts
// the store-level unique violation, so even two racing creations cannot both
// succeed.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Code(),
		cmd.Details(),
		cmd.Creator().Ref(),
		cmd.Assignee(),
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

	repo := uow.OrderRepository()

	// The pre-check gives a clean error without burning an insert; a race
	// that slips past it still hits the unique index inside Add.
	if _, err = repo.GetByCode(ctx, cmd.Code()); err == nil {
		return nil, errs.NewConflictError("order code already exists")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = repo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
