package commands

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/guard"
)

// ErrCheckOutCommandIsNotConstructed is returned when a CheckOutCommand
// was not created via NewCheckOutCommand.
var ErrCheckOutCommandIsNotConstructed = errors.New(
	"CheckOutCommand must be created via NewCheckOutCommand constructor",
)

// CheckOutCommand is a request to close the courier's currently open shift.
type CheckOutCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOutCommand creates a command to close the courier's open shift.
func NewCheckOutCommand(courierID kernel.UUID) (CheckOutCommand, error) {
	cmd := CheckOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return CheckOutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOutCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutCommandIsNotConstructed)
}

// CourierID returns the courier closing the shift.
func (c CheckOutCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CheckOutCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
