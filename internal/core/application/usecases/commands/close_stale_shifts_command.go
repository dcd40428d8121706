package commands

import (
	"errors"
	"time"

	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// ErrCloseStaleShiftsCommandIsNotConstructed is returned when a
// CloseStaleShiftsCommand was not created via NewCloseStaleShiftsCommand.
var ErrCloseStaleShiftsCommandIsNotConstructed = errors.New(
	"CloseStaleShiftsCommand must be created via NewCloseStaleShiftsCommand constructor",
)

// CloseStaleShiftsCommand is a request to force-close every shift that has
// been open since before the cutoff. Covers couriers who forget to check out.
type CloseStaleShiftsCommand struct { //nolint:recvcheck //using for validation
	cutoff  time.Time
	closeAt time.Time

	guard guard.ConstructorGuard
}

// NewCloseStaleShiftsCommand creates a command to close shifts opened before
// cutoff, stamping closeAt as their check-out time.
func NewCloseStaleShiftsCommand(cutoff time.Time, closeAt time.Time) (CloseStaleShiftsCommand, error) {
	cmd := CloseStaleShiftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCutoff(cutoff),
		cmd.setCloseAt(closeAt),
	); err != nil {
		return CloseStaleShiftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseStaleShiftsCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleShiftsCommandIsNotConstructed)
}

// Cutoff returns the check-in deadline: shifts opened before it are closed.
func (c CloseStaleShiftsCommand) Cutoff() time.Time {
	return c.cutoff
}

// CloseAt returns the timestamp recorded as the forced check-out time.
func (c CloseStaleShiftsCommand) CloseAt() time.Time {
	return c.closeAt
}

func (c *CloseStaleShiftsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}
	c.cutoff = cutoff
	return nil
}

func (c *CloseStaleShiftsCommand) setCloseAt(closeAt time.Time) error {
	if closeAt.IsZero() {
		return errs.NewValueIsRequiredError("closeAt")
	}
	c.closeAt = closeAt
	return nil
}
