package commands

import (
	"context"
	"errors"

	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles order modification.
//
// Authorization rules:
//   - administrators may change every field, including the assignee
//   - the current assignee may change everything except the assignee field
//   - a principal the order is invisible to gets an ObjectNotFoundError,
//     indistinguishable from a missing order
//   - a principal who can see the order but is not its assignee gets a
//     ForbiddenError
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the modified order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	target, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	patch := cmd.Patch()

	if !principal.IsAdmin() {
		if !target.ViewableBy(principal) {
			return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
		}
		if !target.IsAssignedTo(principal) {
			return nil, errs.NewForbiddenError("only the assignee may modify this order")
		}
		if patch.AssignedTo != nil {
			return nil, errs.NewForbiddenError("only an administrator may reassign an order")
		}
	}

	if err = applyPatch(target, patch); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func applyPatch(target *order.Order, patch OrderPatch) error {
	details := target.Details()

	if patch.CustomerName != nil {
		details.CustomerName = *patch.CustomerName
	}
	if patch.Address != nil {
		details.Address = *patch.Address
	}
	if patch.PickupAddress != nil {
		details.PickupAddress = *patch.PickupAddress
	}
	if patch.PickupPoint != nil {
		details.PickupPoint = patch.PickupPoint
	}
	if patch.DropAddress != nil {
		details.DropAddress = *patch.DropAddress
	}
	if patch.DropPoint != nil {
		details.DropPoint = patch.DropPoint
	}
	if patch.Phone != nil {
		details.Phone = *patch.Phone
	}
	if patch.COD != nil {
		details.COD = *patch.COD
	}

	err := target.ChangeDetails(details)
	if patch.Status != nil {
		err = errors.Join(err, target.ChangeStatus(*patch.Status))
	}
	if patch.AssignedTo != nil {
		err = errors.Join(err, target.Assign(*patch.AssignedTo))
	}

	return err
}
