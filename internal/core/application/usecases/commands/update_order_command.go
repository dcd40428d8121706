package commands

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch carries the optional fields of an order update. A nil field is
// left unchanged. Coordinates are set as whole points; a caller that supplies
// only half of a latitude/longitude pair is rejected at the transport layer
// before a patch is ever built.
type OrderPatch struct {
	CustomerName  *string
	Address       *string
	PickupAddress *string
	PickupPoint   *kernel.GeoPoint
	DropAddress   *string
	DropPoint     *kernel.GeoPoint
	Phone         *string
	COD           *int64
	Status        *order.Status
	AssignedTo    *kernel.UserRef
}

// UpdateOrderCommand is a request to modify an existing order on behalf of a
// principal. Administrators may change every field including the assignee;
// the current assignee may change everything except the assignee field;
// everyone else is rejected.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	patch     OrderPatch
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to modify an order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	patch OrderPatch,
	principal kernel.Principal,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the requested field changes.
func (c UpdateOrderCommand) Patch() OrderPatch {
	return c.patch
}

// Principal returns the principal requesting the change.
func (c UpdateOrderCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}
