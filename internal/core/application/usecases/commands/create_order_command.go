package commands

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a request to register a new delivery order on behalf
// of the creating principal. When no assignee is given the order is assigned
// to its creator.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	code     string
	details  order.Details
	assignee *kernel.UserRef
	creator  kernel.Principal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Field-level validation (customer name, non-negative COD, coordinate bounds)
// is delegated to the order aggregate; the command checks only what it owns.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	code string,
	details order.Details,
	assignee *kernel.UserRef,
	creator kernel.Principal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCode(code),
		cmd.setAssignee(assignee),
		cmd.setCreator(creator),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the human-readable order code.
func (c CreateOrderCommand) Code() string {
	return c.code
}

// Details returns the descriptive order fields.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Assignee returns the requested assignee, or nil to default to the creator.
func (c CreateOrderCommand) Assignee() *kernel.UserRef {
	return c.assignee
}

// Creator returns the principal creating the order.
func (c CreateOrderCommand) Creator() kernel.Principal {
	return c.creator
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *CreateOrderCommand) setAssignee(assignee *kernel.UserRef) error {
	if assignee == nil {
		return nil
	}
	if err := assignee.Validate(); err != nil {
		return err
	}
	ref := *assignee
	c.assignee = &ref
	return nil
}

func (c *CreateOrderCommand) setCreator(creator kernel.Principal) error {
	if err := creator.Validate(); err != nil {
		return err
	}
	c.creator = creator
	return nil
}
