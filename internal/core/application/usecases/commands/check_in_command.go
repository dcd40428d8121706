package commands

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/guard"
)

// ErrCheckInCommandIsNotConstructed is returned when a CheckInCommand
// was not created via NewCheckInCommand.
var ErrCheckInCommandIsNotConstructed = errors.New(
	"CheckInCommand must be created via NewCheckInCommand constructor",
)

// CheckInCommand is a request to open a work shift for a courier,
// optionally tied to the order the courier is about to deliver.
type CheckInCommand struct { //nolint:recvcheck //using for validation
	shiftID   kernel.UUID
	courierID kernel.UUID
	orderID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInCommand creates a command to open a shift for the given courier.
func NewCheckInCommand(shiftID kernel.UUID, courierID kernel.UUID, orderID *kernel.UUID) (CheckInCommand, error) {
	cmd := CheckInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShiftID(shiftID),
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CheckInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInCommand) Validate() error {
	return c.guard.Validate(ErrCheckInCommandIsNotConstructed)
}

// ShiftID returns the identifier for the new shift.
func (c CheckInCommand) ShiftID() kernel.UUID {
	return c.shiftID
}

// CourierID returns the courier opening the shift.
func (c CheckInCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the order the shift is tied to, or nil.
func (c CheckInCommand) OrderID() *kernel.UUID {
	return c.orderID
}

func (c *CheckInCommand) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}
	c.shiftID = shiftID
	return nil
}

func (c *CheckInCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CheckInCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	c.orderID = &id
	return nil
}
